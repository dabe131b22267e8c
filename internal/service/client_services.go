package service

import (
	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/internal/userapi"
)

type ClientServices struct {
	UserService     UserService
	RegistrationJob UserRegistrationJob
}

// NewClientServices wires the user service and its background job over api.
func NewClientServices(api userapi.UserAPI, workersCfg config.ClientWorkers, hook RegistrationHook, log *logger.Logger) (*ClientServices, error) {
	if api == nil {
		return nil, ErrNilUserAPI
	}

	users := NewUserService(api, workersCfg, log)

	return &ClientServices{
		UserService:     users,
		RegistrationJob: NewUserRegistrationJob(users, hook, log),
	}, nil
}

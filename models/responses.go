package models

// CreateUserResponse is the JSON body returned by a successful user creation.
//
// Some deployments return the identifier under "id" instead of "user_id";
// both keys are accepted and [CreateUserResponse.Record] prefers "user_id".
type CreateUserResponse struct {
	UserID   string `json:"user_id"`
	ID       string `json:"id"`
	Password string `json:"password"`
	UserURL  string `json:"user_url"`
}

// Record converts the response into a [UserRecord].
func (r CreateUserResponse) Record() UserRecord {
	id := r.UserID
	if id == "" {
		id = r.ID
	}

	return UserRecord{UserID: id, Password: r.Password, URL: r.UserURL}
}

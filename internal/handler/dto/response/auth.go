package response

import "hotelbook/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type CurrentUserResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

type StaffResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

package dto

// MessageResponse is the body of status-update responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse is the body of delete responses, mirroring the
// {success, message} contract of the REST surface.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

package response

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ContactReceived() ContactResponse {
	return ContactResponse{
		Success: true,
		Message: "Your message has been received. Our team will contact you soon.",
	}
}

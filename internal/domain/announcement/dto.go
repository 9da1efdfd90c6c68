package announcement

import "github.com/zenhr/zenhr-backend-go/internal/pkg/validator"

type Response struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}

func ToResponse(a Announcement) Response {
	return Response(a)
}

type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "Title is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "Content is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

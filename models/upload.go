package models

import "io"

// ImageUpload carries a product image received as a multipart file part.
// Filename is the client-supplied name before sanitization.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package http

import "errors"

// Sentinel errors for multipart product-creation requests. They are mapped
// to client-facing responses by errors_mapper.go.
var (
	// errRequestTooLarge is returned when a multipart body exceeds the
	// configured upload cap before parsing completes.
	errRequestTooLarge = errors.New("request body exceeds the upload limit")

	// errMalformedForm is returned when multipart fields cannot be parsed
	// (a broken body, a non-numeric price or category_id, a bad file part).
	errMalformedForm = errors.New("malformed multipart form")
)

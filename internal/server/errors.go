// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no http handler provided")
)

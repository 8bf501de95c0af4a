// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. The stored format is
// "pbkdf2:sha256:<iterations>$<salt>$<hex digest>", compatible with the
// hashes the original service wrote, so existing rows keep verifying.
const (
	pbkdf2Iterations = 600000
	pbkdf2KeyLen     = 32
	saltBytes        = 16
)

// ErrMalformedPasswordHash is returned by VerifyPassword when the stored
// value does not follow the expected pbkdf2 format.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// HashPassword derives an irreversible salted representation of password
// suitable for storage. The plaintext never leaves this function.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	digest := pbkdf2.Key([]byte(password), []byte(saltHex), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, saltHex, hex.EncodeToString(digest)), nil
}

// VerifyPassword reports whether password matches the stored hash produced
// by HashPassword. Comparison is constant-time.
func VerifyPassword(stored, password string) (bool, error) {
	method, rest, ok := strings.Cut(stored, "$")
	if !ok {
		return false, ErrMalformedPasswordHash
	}

	methodParts := strings.Split(method, ":")
	if len(methodParts) != 3 || methodParts[0] != "pbkdf2" || methodParts[1] != "sha256" {
		return false, ErrMalformedPasswordHash
	}

	iterations, err := strconv.Atoi(methodParts[2])
	if err != nil || iterations < 1 {
		return false, ErrMalformedPasswordHash
	}

	salt, digestHex, ok := strings.Cut(rest, "$")
	if !ok {
		return false, ErrMalformedPasswordHash
	}

	wantDigest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, ErrMalformedPasswordHash
	}

	gotDigest := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(wantDigest), sha256.New)

	return subtle.ConstantTimeCompare(wantDigest, gotDigest) == 1, nil
}

/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package crypto provides symmetric encryption of sensitive flow data at rest.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/asgardeo/authtree/internal/system/log"
)

// CryptoServiceInterface defines the encryption operations used by the stores.
type CryptoServiceInterface interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(envelope string) ([]byte, error)
}

// CryptoService encrypts payloads with AES-256-GCM.
type CryptoService struct {
	key   []byte
	keyID string
}

// NewCryptoService creates a new instance of CryptoService with the provided key.
func NewCryptoService(key []byte) (*CryptoService, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length %d, expected 32 bytes", len(key))
	}
	sum := sha256.Sum256(key)
	return &CryptoService{
		key:   key,
		keyID: hex.EncodeToString(sum[:8]),
	}, nil
}

// NewCryptoServiceFromHex creates a CryptoService from a hex encoded key. A random key is generated
// when the configured key is empty.
func NewCryptoServiceFromHex(encodedKey string) (*CryptoService, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CryptoService"))
	if encodedKey == "" {
		logger.Warn("No crypto key configured, generating an ephemeral key")
		key, err := GenerateRandomKey()
		if err != nil {
			return nil, err
		}
		return NewCryptoService(key)
	}

	key, err := hex.DecodeString(encodedKey)
	if err != nil {
		return nil, errors.New("crypto key is not hex encoded")
	}
	return NewCryptoService(key)
}

// GenerateRandomKey generates a random 32-byte key suitable for AES-256.
func GenerateRandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt encrypts the plaintext and returns a serialized EncryptedData envelope.
func (cs *CryptoService) Encrypt(plaintext []byte) (string, error) {
	return sealAESGCM(cs.key, cs.keyID, plaintext)
}

// Decrypt decrypts a serialized EncryptedData envelope.
func (cs *CryptoService) Decrypt(envelope string) ([]byte, error) {
	return openAESGCM(cs.key, envelope)
}

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

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Algorithm represents a supported encryption algorithm.
type Algorithm string

// AESGCM represents the AES-GCM algorithm.
const AESGCM Algorithm = "AES-GCM"

// EncryptedData is the serialized envelope of an encrypted payload.
type EncryptedData struct {
	Algorithm  Algorithm `json:"alg"`
	Ciphertext string    `json:"ct"`
	KeyID      string    `json:"kid"`
}

// sealAESGCM encrypts the plaintext and returns the serialized envelope.
func sealAESGCM(key []byte, kid string, plaintext []byte) (string, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	encData := EncryptedData{
		Algorithm:  AESGCM,
		Ciphertext: base64.StdEncoding.EncodeToString(aesGCM.Seal(nonce, nonce, plaintext, nil)),
		KeyID:      kid,
	}
	jsonData, err := json.Marshal(encData)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// openAESGCM decrypts a serialized envelope produced by sealAESGCM.
func openAESGCM(key []byte, envelope string) ([]byte, error) {
	var encData EncryptedData
	if err := json.Unmarshal([]byte(envelope), &encData); err != nil {
		return nil, fmt.Errorf("invalid data format: %w", err)
	}
	if encData.Algorithm != AESGCM {
		return nil, fmt.Errorf("unsupported algorithm: %s", encData.Algorithm)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encData.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid payload encoding: %w", err)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}
	return aesGCM.Open(nil, ciphertext[:nonceSize], ciphertext[nonceSize:], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

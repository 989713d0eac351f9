/*
   Copyright 2024 Arbor Labs

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cipher implements a Caesar substitution cipher over the
// uppercase latin alphabet.
package cipher

// alphabet size
const letters = 26

// CaesarCipher encrypts and decrypts messages by rotating uppercase
// letters a fixed number of places. Characters outside A-Z pass
// through untouched.
type CaesarCipher struct {
	forward  [letters]byte
	backward [letters]byte
}

// NewCaesarCipher constructs a cipher rotating letters by shift
// places. Negative shifts and shifts beyond the alphabet wrap around.
func NewCaesarCipher(shift int) *CaesarCipher {
	shift = ((shift % letters) + letters) % letters
	c := &CaesarCipher{}
	for k := 0; k < letters; k++ {
		c.forward[k] = byte((k+shift)%letters + 'A')
		c.backward[k] = byte((k-shift+letters)%letters + 'A')
	}
	return c
}

// Encrypt returns the encrypted form of message.
func (c *CaesarCipher) Encrypt(message string) string {
	return transform(message, c.forward)
}

// Decrypt returns the original message given an encrypted secret.
func (c *CaesarCipher) Decrypt(secret string) string {
	return transform(secret, c.backward)
}

func transform(original string, code [letters]byte) string {
	msg := []byte(original)
	for k := range msg {
		if msg[k] >= 'A' && msg[k] <= 'Z' {
			msg[k] = code[msg[k]-'A']
		}
	}
	return string(msg)
}

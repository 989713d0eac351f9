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

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arborlabs/arbor/cipher"
)

func newCipherCommand() *cobra.Command {

	var shift int

	cmd := &cobra.Command{
		Use:   "cipher",
		Short: "Encrypt or decrypt uppercase messages with a Caesar cipher",
	}

	f := cmd.PersistentFlags()
	f.IntVar(&shift, "shift", 4, "Number of places to rotate letters")
	_ = v.BindPFlag("cipher.shift", f.Lookup("shift"))
	_ = v.BindEnv("cipher.shift", "ARBOR_CIPHER_SHIFT")

	encrypt := &cobra.Command{
		Use:   "encrypt MESSAGE",
		Short: "Print the encrypted form of MESSAGE",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := cipher.NewCaesarCipher(v.GetInt("cipher.shift"))
			fmt.Println(c.Encrypt(strings.Join(args, " ")))
		},
	}

	decrypt := &cobra.Command{
		Use:   "decrypt SECRET",
		Short: "Print the decrypted form of SECRET",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := cipher.NewCaesarCipher(v.GetInt("cipher.shift"))
			fmt.Println(c.Decrypt(strings.Join(args, " ")))
		},
	}

	cmd.AddCommand(encrypt, decrypt)
	return cmd
}

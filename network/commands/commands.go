/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

// Command synthesizes the argument vector of an external tool invocation.
// SessionName identifies the operation in logs and error reports.
type Command interface {
	Args() []string
	SessionName() string
}

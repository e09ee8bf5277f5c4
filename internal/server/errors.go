// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the config names no
// listen address at all.
var errNoServersAreCreated = errors.New("no servers are created")

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
)

// Listener - a set of bound sockets serving requests
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Stop()
}

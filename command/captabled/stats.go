// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log heap usage
func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d",
			m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega, runtime.NumGoroutine())

		time.Sleep(statsDelay)
	}
}

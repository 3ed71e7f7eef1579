// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Reloader - serves the certificate currently on disk
//
// a rewrite of either file is picked up for new connections; a pair
// that does not load leaves the previous certificate in use
type Reloader struct {
	sync.RWMutex

	log             *logger.L
	name            string
	certificateFile string
	keyFile         string

	keyPair     *tls.Certificate
	fingerprint Fingerprint

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewReloader - load the pair and start watching both files
func NewReloader(log *logger.L, name, certificateFile, keyFile string) (*Reloader, error) {

	r := &Reloader{
		log:             log,
		name:            name,
		certificateFile: filepath.Clean(certificateFile),
		keyFile:         filepath.Clean(keyFile),
		done:            make(chan struct{}),
	}

	if err := r.load(); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	// directories are watched so that files replaced by rename are seen
	for _, dir := range []string{filepath.Dir(r.certificateFile), filepath.Dir(r.keyFile)} {
		if err := watcher.Add(dir); nil != err {
			_ = watcher.Close()
			return nil, err
		}
	}
	r.watcher = watcher

	go r.run()

	return r, nil
}

// Config - a TLS configuration that asks the reloader for each handshake
func (r *Reloader) Config() *tls.Config {
	return &tls.Config{
		GetCertificate: r.getCertificate,
	}
}

// Fingerprint - of the certificate currently served
func (r *Reloader) Fingerprint() Fingerprint {
	r.RLock()
	defer r.RUnlock()
	return r.fingerprint
}

// Close - stop watching
func (r *Reloader) Close() error {
	close(r.done)
	return r.watcher.Close()
}

func (r *Reloader) getCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	r.RLock()
	defer r.RUnlock()
	return r.keyPair, nil
}

func (r *Reloader) load() error {
	config, fingerprint, err := GetFiles(r.log, r.name, r.certificateFile, r.keyFile)
	if nil != err {
		return err
	}

	r.Lock()
	r.keyPair = &config.Certificates[0]
	r.fingerprint = fingerprint
	r.Unlock()

	return nil
}

func (r *Reloader) run() {
	for {
		select {
		case <-r.done:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !r.isWatched(event.Name) || !isChange(event) {
				continue
			}
			if err := r.load(); nil != err {
				r.log.Warnf("%s: reload after %v  error: %s", r.name, event, err)
				continue
			}
			r.log.Infof("%s: reloaded  SHA3-256 fingerprint: %x", r.name, r.Fingerprint())

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.log.Errorf("%s: watcher error: %s", r.name, err)
		}
	}
}

func (r *Reloader) isWatched(name string) bool {
	name = filepath.Clean(name)
	return name == r.certificateFile || name == r.keyFile
}

func isChange(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

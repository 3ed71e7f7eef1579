// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/captabled/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestAppendVarint64(t *testing.T) {
	prefix := []byte{0xaa, 0xbb}
	for i, item := range varint64Tests {
		b := append([]byte{}, prefix...)
		result := util.AppendVarint64(b, item.value)
		if !bytes.Equal(result[:2], prefix) || !bytes.Equal(result[2:], item.encoded) {
			t.Errorf("%d: AppendVarint64(%x) -> %x", i, item.value, result)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	suffix := []byte{0xff, 0x97, 0x23}
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), suffix...)
		result, count := util.FromVarint64(b)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d", i, b, result, count, item.value)
		}
		if !bytes.Equal(suffix, b[count:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count:], suffix)
		}
	}

	truncated := [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
	}
	for i, item := range truncated {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	value, count := util.ClippedVarint64([]byte{0x10}, 1, 32)
	if 16 != value || 1 != count {
		t.Errorf("clipped: %d, %d  expected: 16, 1", value, count)
	}

	value, count = util.ClippedVarint64([]byte{0x21}, 1, 32)
	if 0 != value || 0 != count {
		t.Errorf("over maximum: %d, %d  expected: 0, 0", value, count)
	}

	value, count = util.ClippedVarint64([]byte{0x00}, 1, 32)
	if 0 != value || 0 != count {
		t.Errorf("under minimum: %d, %d  expected: 0, 0", value, count)
	}

	// a huge value must not wrap into range
	value, count = util.ClippedVarint64(util.ToVarint64(0xffffffffffffffff), 0, 8192)
	if 0 != value || 0 != count {
		t.Errorf("huge: %d, %d  expected: 0, 0", value, count)
	}
}

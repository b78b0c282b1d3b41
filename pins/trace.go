// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package pins

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-restruct/restruct"

	"triviumlite/defErr"
	"triviumlite/trivium"
	"triviumlite/utils"
)

const (
	traceVersion    uint8 = 1
	traceHeaderSize       = 12 // magic, version, spare, count
)

var (
	traceMagic       = [4]byte{'T', 'R', 'V', 'L'}
	errTraceMagic    = errors.New("pins: not a trace file")
	errTraceVersion  = errors.New("pins: unsupported trace version")
	errTraceTruncate = errors.New("pins: trace shorter than its header")
)

// TraceRecord is the pin view of one clock edge, taken after the edge.
type TraceRecord struct {
	Cycle  uint64
	RstN   uint8
	Ena    uint8
	UiIn   uint8
	UioIn  uint8
	UoOut  uint8
	Phase  uint8
	Fault  uint8
	Spare  uint8
	Offset uint32
	State  uint32 // trivium.State.Pack()
}

type traceFile struct {
	Magic   [4]byte
	Version uint8
	Spare   [3]byte
	Count   uint32        `struct:"sizeof=Records"`
	Records []TraceRecord `struct:"sizefrom=Count"`
}

// Recorder collects TraceRecords. Verbose also logs each edge.
type Recorder struct {
	Verbose bool
	Records []TraceRecord
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (r *Recorder) record(p *Pins, err error) {
	if r == nil {
		return
	}
	snap := p.engine.Snapshot()
	rec := TraceRecord{
		Cycle:  p.cycle,
		RstN:   b2u(p.RstN),
		Ena:    b2u(p.Ena),
		UiIn:   p.UiIn,
		UioIn:  p.UioIn,
		UoOut:  snap.Output,
		Phase:  uint8(snap.Phase),
		Fault:  b2u(err != nil),
		Offset: uint32(snap.Offset),
		State:  snap.State.Pack(),
	}
	r.Records = append(r.Records, rec)
	if r.Verbose {
		utils.LogHex(fmt.Sprintf("[cycle %4d] rst_n=%d ena=%d ui_in=%02x uio_in=%02x uo_out=%02x %s state:",
			rec.Cycle, rec.RstN, rec.Ena, rec.UiIn, rec.UioIn, rec.UoOut, snap.Phase),
			utils.PackedBytes(rec.State, trivium.StateWidth))
	}
}

// EncodeTrace writes records as one little-endian trace file.
func EncodeTrace(w io.Writer, records []TraceRecord) error {
	f := traceFile{
		Magic:   traceMagic,
		Version: traceVersion,
		Records: records,
	}
	data, err := restruct.Pack(binary.LittleEndian, &f)
	if err != nil {
		return defErr.DescribeThenConcat(`pins: pack trace`, err)
	}
	_, err = w.Write(data)
	return err
}

func DecodeTrace(data []byte) ([]TraceRecord, error) {
	if len(data) < traceHeaderSize {
		return nil, errTraceTruncate
	}
	if !bytes.Equal(data[:len(traceMagic)], traceMagic[:]) {
		return nil, errTraceMagic
	}
	if data[len(traceMagic)] != traceVersion {
		return nil, errTraceVersion
	}
	recSize, err := restruct.SizeOf(&TraceRecord{})
	if err != nil {
		return nil, err
	}
	count := binary.LittleEndian.Uint32(data[traceHeaderSize-4:])
	if uint64(len(data)-traceHeaderSize) < uint64(count)*uint64(recSize) {
		return nil, errTraceTruncate
	}

	var f traceFile
	if err := restruct.Unpack(data, binary.LittleEndian, &f); err != nil {
		return nil, defErr.DescribeThenConcat(`pins: unpack trace`, err)
	}
	return f.Records, nil
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/entrain/synth"
	"github.com/ik5/entrain/utils"
)

// Encode writes buf as a 16-bit PCM WAV file. go-audio's encoder needs an
// io.WriteSeeker because the RIFF sizes are patched on Close.
func Encode(w io.WriteSeeker, buf *synth.Buffer) error {
	enc := gowav.NewEncoder(w, buf.SampleRate, 16, buf.Channels, 1)

	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.SampleRate,
		},
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: 16,
	}

	for i, v := range buf.Data {
		intBuf.Data[i] = int(utils.Float32ToInt16(v))
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// EncodeFile writes buf to path as a 16-bit PCM WAV file.
func EncodeFile(path string, buf *synth.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

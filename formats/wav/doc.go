// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, in any channel
// count and sample rate. Samples come out as float32 in [-1, 1):
//
//	f, _ := os.Open("loop.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedEncoding, ...
//	}
//	defer src.Close()
//
// Input that cannot seek is read into memory first. The returned source
// implements audio.Sized, so audio.Collect can reserve the whole file.
// IEEE float and compressed WAV files are rejected with
// ErrUnsupportedEncoding.
//
// # Encoding
//
// StereoWriter turns interleaved little-endian int16 stereo bytes, the
// format the dicing engine produces, into a 16-bit stereo WAV:
//
//	out, _ := os.Create("diced.wav")
//	w := wav.NewStereoWriter(out, 44100)
//	io.CopyN(w, engine, 10*44100*4)
//	w.Close()
//	out.Close()
//
// The header is patched on Close, which is why the writer needs an
// io.WriteSeeker.
package wav

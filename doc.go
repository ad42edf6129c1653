// SPDX-License-Identifier: EPL-2.0

// Package speechprep prepares paired noisy/clean speech datasets for
// speech-enhancement training.
//
// # Loading Audio
//
// The root package ties the codecs together. Load and Loader turn any
// supported file into a mono audio.Buffer at a target rate:
//
//	buf, err := speechprep.Load("clean/0001.wav", 16000)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(buf.SampleRate(), buf.Len())
//
// A Loader can be reused across goroutines and configured once:
//
//	l := speechprep.NewLoader(16000,
//	    speechprep.WithExpectedRate(16000),
//	    speechprep.WithLogger(log),
//	)
//	buf, err := l.Load("noise/cafe.ogg")
//
// WithExpectedRate declares the rate the sources should have. A file whose
// header disagrees is still decoded at its header rate, and a warning with
// the path and both rates is logged. A target rate of 0 keeps each file's
// native rate.
//
// # Supported Formats
//
//   - WAV, PCM 8/16/24/32-bit and IEEE float32, via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// DefaultRegistry maps the extensions wav, mp3, ogg, aiff and aif to these
// decoders. WithRegistry swaps in another registry, for example one with an
// extra decoder. Raw headerless PCM is wrapped into WAV by formats/pcm.
//
// # Subpackages
//
//   - audio: Source, Decoder and Registry, the streaming resampler and the
//     mono downmixer
//   - mixing: segment selection, RMS normalization and SNR mixing
//   - dataset: directory scanning, the dataset builder and the resample and
//     PCM conversion jobs
//
// # Building a Dataset
//
//	b, err := dataset.NewBuilder(dataset.Options{
//	    CleanDir:      "datasets_source/test_clean",
//	    NoiseDir:      "datasets_source/test_noise",
//	    OutputDir:     "datasets",
//	    NoisyName:     "test_noisy",
//	    CleanName:     "test_clean",
//	    SNR:           mixing.SNRSource{Mode: mixing.SNRLow},
//	    TargetRate:    16000,
//	    SegmentLength: 16384,
//	    Iterations:    1,
//	})
//	if err != nil {
//	    return err
//	}
//	sum, err := b.Run(ctx)
//
// The speechprep command in cmd/speechprep drives all of it from the
// command line, with defaults taken from SPEECHPREP_* environment variables
// or a .env file.
package speechprep

// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/doyosae/speechprep/formats/pcm"
)

func ExampleConvertFile() {
	dir, err := os.MkdirTemp("", "pcm-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	f := pcm.Format{Channels: 1, BitDepth: 16, SampleRate: 16000}

	// Three 16-bit samples and a stray byte, which is dropped.
	src := filepath.Join(dir, "utt.pcm")
	if err := os.WriteFile(src, []byte{1, 0, 2, 0, 3, 0, 9}, 0o644); err != nil {
		fmt.Println(err)
		return
	}

	frames, err := pcm.ConvertFile(src, filepath.Join(dir, "utt.wav"), f)
	fmt.Println(frames, err)

	empty := filepath.Join(dir, "empty.pcm")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		fmt.Println(err)
		return
	}

	_, err = pcm.ConvertFile(empty, filepath.Join(dir, "empty.wav"), f)
	fmt.Println(errors.Is(err, pcm.ErrNoFrames))

	_, err = os.Stat(filepath.Join(dir, "empty.wav"))
	fmt.Println(os.IsNotExist(err))
	// Output:
	// 3 <nil>
	// true
	// true
}

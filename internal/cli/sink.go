package cli

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	loggenerrors "github.com/toyz/loggen/internal/errors"
)

// outputSink buffers generated code for stdout or a file. Files are written
// to a temporary sibling and renamed into place only when the run succeeds.
type outputSink struct {
	buf  *bufio.Writer
	file *os.File
	path string
}

// openSink opens the destination named by output
func openSink(output string, stdout io.Writer) (*outputSink, error) {
	if output == "" || output == "-" {
		return &outputSink{buf: bufio.NewWriter(stdout), path: "stdout"}, nil
	}

	file, err := os.CreateTemp(filepath.Dir(output), ".loggen-*.go")
	if err != nil {
		return nil, loggenerrors.IO("create", output, err)
	}
	return &outputSink{buf: bufio.NewWriter(file), file: file, path: output}, nil
}

// Write buffers p
func (s *outputSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Close releases the sink. On success it flushes and publishes the output;
// when failed is set a file destination is discarded.
func (s *outputSink) Close(failed bool) error {
	if s.file == nil {
		if failed {
			return nil
		}
		if err := s.buf.Flush(); err != nil {
			return loggenerrors.IO("flush", s.path, err)
		}
		return nil
	}

	tmp := s.file.Name()
	if failed {
		s.file.Close()
		os.Remove(tmp)
		return nil
	}

	if err := s.buf.Flush(); err != nil {
		s.file.Close()
		os.Remove(tmp)
		return loggenerrors.IO("flush", s.path, err)
	}
	if err := s.file.Close(); err != nil {
		os.Remove(tmp)
		return loggenerrors.IO("close", s.path, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return loggenerrors.IO("chmod", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return loggenerrors.IO("rename", s.path, err)
	}
	return nil
}

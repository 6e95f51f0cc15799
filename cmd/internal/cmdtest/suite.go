package cmdtest

import (
	"bytes"
	"io"
	"strings"

	cmdutil "github.com/puppetlabs/thirteen/cmd/util"
	"github.com/puppetlabs/thirteen/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

// Suite represents a type that tests thirteen's commands
type Suite struct {
	suite.Suite
	stdout           *bytes.Buffer
	stderr           *bytes.Buffer
	oldStdin         io.Reader
	oldStdout        io.Writer
	oldStderr        io.Writer
	oldColoredStderr io.Writer
}

// SetupTest loads the default config and mocks Stdout/Stderr/ColoredStderr.
// Stdin is empty until SetStdin is called.
func (s *Suite) SetupTest() {
	viper.Reset()
	if err := config.Load(); err != nil {
		s.FailNow("failed to load the config", err)
	}
	s.stdout, s.stderr = &bytes.Buffer{}, &bytes.Buffer{}
	s.oldStdin, s.oldStdout, s.oldStderr, s.oldColoredStderr = cmdutil.Stdin, cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr
	cmdutil.Stdin = strings.NewReader("")
	cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr = s.stdout, s.stderr, s.stderr
}

// TearDownTest resets Stdin/Stdout/Stderr/ColoredStderr
func (s *Suite) TearDownTest() {
	s.stdout, s.stderr = nil, nil
	cmdutil.Stdin = s.oldStdin
	cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr = s.oldStdout, s.oldStderr, s.oldColoredStderr
	s.oldStdin, s.oldStdout, s.oldStderr, s.oldColoredStderr = nil, nil, nil, nil
	viper.Reset()
}

// SetStdin sets what the command will read from stdin
func (s *Suite) SetStdin(r io.Reader) {
	cmdutil.Stdin = r
}

// ResetOutput discards everything written to stdout and stderr so far
func (s *Suite) ResetOutput() {
	s.stdout.Reset()
	s.stderr.Reset()
}

// Stdout returns stdout's content
func (s *Suite) Stdout() string {
	return s.stdout.String()
}

// Stderr returns stderr's content
func (s *Suite) Stderr() string {
	return s.stderr.String()
}

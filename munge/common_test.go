package munge

import (
	"fmt"
	"regexp"

	"github.com/stretchr/testify/suite"
)

// Shared setup for the munge function tests. Each case either expects
// a munged value or an error matching errRegex.

type testCase struct {
	input    interface{}
	expected interface{}
	errRegex *regexp.Regexp
}

// nTC => newTestCase
func nTC(input interface{}, v interface{}) testCase {
	return testCase{input: input, expected: v}
}

// nETC => newErrorTestCase
func nETC(input interface{}, errRegex string) testCase {
	return testCase{input: input, errRegex: regexp.MustCompile(errRegex)}
}

type MungeTestSuite struct {
	suite.Suite
	// This should be set in each test.
	mungeFunc func(interface{}) (interface{}, error)
}

func (suite *MungeTestSuite) runTestCases(cases ...testCase) {
	var input interface{}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Panicked on input %#v\n", input)
			panic(r)
		}
	}()
	for _, c := range cases {
		input = c.input
		actual, err := suite.mungeFunc(input)
		if c.errRegex != nil {
			suite.Regexp(c.errRegex, err, "Input was %#v", input)
			continue
		}
		if suite.NoError(err, "Input was %#v", input) {
			suite.Equal(c.expected, actual, "Input was %#v", input)
		}
	}
}

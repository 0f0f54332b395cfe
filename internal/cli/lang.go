package cli

import (
	"strconv"

	"github.com/Alex-mfoniso/vite-forge/internal/project"
)

// languageChoice records the language picked by --ts and --js. Both flags
// write to the same choice, so the last one on the command line wins.
type languageChoice struct {
	lang project.Language
	set  bool
}

// languageSwitch is the pflag.Value behind one of the language flags.
type languageSwitch struct {
	choice *languageChoice
	lang   project.Language
}

func (s *languageSwitch) String() string {
	if s.choice != nil && s.choice.set && s.choice.lang == s.lang {
		return "true"
	}
	return "false"
}

func (s *languageSwitch) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if on {
		s.choice.lang = s.lang
		s.choice.set = true
	}
	return nil
}

func (s *languageSwitch) Type() string { return "bool" }

// IsBoolFlag lets the flag appear without a value.
func (s *languageSwitch) IsBoolFlag() bool { return true }

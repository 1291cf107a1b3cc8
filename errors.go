package tagsoup

import "fmt"

func (e ErrParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d\n -> '%s' <-- around here",
		e.Err,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e ErrParseError) Unwrap() error {
	return e.Err
}

func (e ErrConfig) Error() string {
	if e.Unknown {
		return "unknown option '" + e.Name + "'"
	}
	return fmt.Sprintf("invalid value for option '%s': %v", e.Name, e.Value)
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", d.Err, d.LineNumber, d.Column)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

package archive

import "fmt"

// FormatError indicates a manifest or shard that is not in the expected
// header-line-plus-JSON-array shape, or an archive that is not a readable zip.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed archive entry: %s", e.Reason)
	}
	return fmt.Sprintf("malformed archive entry %s: %s", e.Path, e.Reason)
}

// SchemaError indicates a tweet missing a key the archive format guarantees.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("tweet missing required field %q", e.Field)
}

// ParseError indicates malformed JSON or a timestamp that does not match
// TimeLayout. It aborts the shard being processed.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShardError records the failure of a single shard during assembly. The
// assembler skips the shard and continues with the rest.
type ShardError struct {
	Shard string
	Err   error
}

func (e *ShardError) Error() string {
	return fmt.Sprintf("shard %s: %v", e.Shard, e.Err)
}

func (e *ShardError) Unwrap() error {
	return e.Err
}

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseRecord captures the stream of callback invocations as
// "option=v1,v2" strings.
type parseRecord struct {
	calls []string
	rc    int
}

func (r *parseRecord) parse(option string, values []string) int {
	r.calls = append(r.calls, option+"="+strings.Join(values, ","))
	return r.rc
}

func schemaCommand(rec *parseRecord, opts ...Option) *Command {
	return &Command{
		Name:         "setup",
		Desc:         "setup",
		Options:      opts,
		OptionsParse: rec.parse,
		Handle:       func() int { return 0 },
	}
}

func TestParseOptions_RequiredMissing(t *testing.T) {
	rec := &parseRecord{}
	cmd := schemaCommand(rec,
		Option{LongName: "device", ShortName: 'd', ValueLabel: "DEVICE", Required: true, MaxCount: 1})
	e, _, errBuf := testEngine(cmd)

	err := e.parseOptions(cmd, nil, cmd.Options, []string{"sedctl", "--setup"}, 2)

	assert.ErrorIs(t, err, ErrMissingRequiredOption)
	assert.Contains(t, errBuf.String(), "Missing required option -d/--device.")
	assert.Empty(t, rec.calls)
}

func TestParseOptions_RepetitionBounds(t *testing.T) {
	opt := Option{LongName: "device", ShortName: 'd', ValueLabel: "DEVICE", Required: true, MaxCount: 2}

	t.Run("three occurrences fail", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec, opt)
		e, _, errBuf := testEngine(cmd)

		argv := []string{"sedctl", "--setup", "--device", "a", "--device", "b", "--device", "c"}
		err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

		assert.ErrorIs(t, err, ErrOptionRepeated)
		assert.Contains(t, errBuf.String(), "Option supplied too many times -d/--device.")
		assert.Empty(t, rec.calls, "presence audit runs before any extraction")
	})

	t.Run("two occurrences succeed", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec, opt)
		e, _, _ := testEngine(cmd)

		argv := []string{"sedctl", "--setup", "--device", "a", "-d", "b"}
		err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"device=a", "device=b"}, rec.calls)
	})
}

func TestParseOptions_ValueRunArity(t *testing.T) {
	t.Run("run longer than max count", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec,
			Option{LongName: "opt", ValueLabel: "VAL", Required: true, MaxCount: 1},
			Option{LongName: "other"})
		e, _, errBuf := testEngine(cmd)

		argv := []string{"sedctl", "--setup", "--opt", "a", "b", "--other"}
		err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

		assert.ErrorIs(t, err, ErrInvalidArgumentCount)
		assert.Contains(t, errBuf.String(), "Invalid number of arguments for --opt.")
	})

	t.Run("empty run for required option", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec,
			Option{LongName: "device", ValueLabel: "DEVICE", Required: true, MaxCount: 1},
			Option{LongName: "force"})
		e, _, errBuf := testEngine(cmd)

		argv := []string{"sedctl", "--setup", "--device", "--force"}
		err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

		assert.ErrorIs(t, err, ErrInvalidArgumentCount)
		assert.Contains(t, errBuf.String(), "Invalid number of arguments for --device.")
	})

	t.Run("empty run for optional-value option", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec,
			Option{LongName: "key", ValueLabel: "KEY", OptionalValue: true, MaxCount: 1})
		e, _, _ := testEngine(cmd)

		err := e.parseOptions(cmd, nil, cmd.Options, []string{"sedctl", "--setup", "--key"}, 2)

		assert.ErrorIs(t, err, ErrInvalidArgumentCount)
	})

	t.Run("unbounded option takes any run", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec,
			Option{LongName: "ranges", ValueLabel: "RANGE"})
		e, _, _ := testEngine(cmd)

		argv := []string{"sedctl", "--setup", "--ranges", "1", "2", "3", "4"}
		err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"ranges=1,2,3,4"}, rec.calls)
	})

	t.Run("value slice is exact", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec,
			Option{LongName: "opt", ValueLabel: "VAL", MaxCount: 2},
			Option{LongName: "other"})
		e, _, _ := testEngine(cmd)

		argv := []string{"sedctl", "--setup", "--opt", "a", "b", "--other"}
		err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"opt=a,b", "other="}, rec.calls)
	})
}

func TestParseOptions_TokenErrors(t *testing.T) {
	t.Run("positional where option expected", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec, Option{LongName: "device", ValueLabel: "DEVICE"})
		e, _, errBuf := testEngine(cmd)

		err := e.parseOptions(cmd, nil, cmd.Options, []string{"sedctl", "--setup", "stray"}, 2)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Contains(t, errBuf.String(), "Invalid format stray.")
	})

	t.Run("well-formed but unknown option", func(t *testing.T) {
		rec := &parseRecord{}
		cmd := schemaCommand(rec, Option{LongName: "device", ValueLabel: "DEVICE"})
		e, _, errBuf := testEngine(cmd)

		err := e.parseOptions(cmd, nil, cmd.Options, []string{"sedctl", "--setup", "--bogus"}, 2)

		assert.ErrorIs(t, err, ErrUnknownOption)
		assert.Contains(t, errBuf.String(), "Unrecognized option --bogus.")
	})
}

func TestParseOptions_CallbackFailureShortCircuits(t *testing.T) {
	rec := &parseRecord{rc: 1}
	cmd := schemaCommand(rec,
		Option{LongName: "device", ValueLabel: "DEVICE", MaxCount: 1},
		Option{LongName: "force"})
	e, _, errBuf := testEngine(cmd)

	argv := []string{"sedctl", "--setup", "--device", "a", "--force"}
	err := e.parseOptions(cmd, nil, cmd.Options, argv, 2)

	assert.ErrorIs(t, err, ErrOptionHandler)
	assert.Contains(t, errBuf.String(), "Error during options handling.")
	assert.Equal(t, []string{"device=a"}, rec.calls, "remaining tokens must not be parsed")
}

func TestParseOptions_NoCallbackConfigured(t *testing.T) {
	cmd := &Command{
		Name:    "setup",
		Options: []Option{{LongName: "device", ValueLabel: "DEVICE"}},
		Handle:  func() int { return 0 },
	}
	e, _, errBuf := testEngine(cmd)

	err := e.parseOptions(cmd, nil, cmd.Options, []string{"sedctl", "--setup", "--device", "a"}, 2)

	assert.ErrorIs(t, err, ErrOptionHandler)
	assert.Contains(t, errBuf.String(), "Internal error.")
}

func TestParseOptions_NamespacedOffset(t *testing.T) {
	var record []string
	cmd := namespaceCommand(t, &record)
	entry := &cmd.Namespace.Entries[1]
	e, _, _ := testEngine(cmd)

	argv := []string{"sedctl", "--manage", "--object", "admin", "--name", "X"}
	err := e.parseOptions(cmd, entry, entry.Options, argv, 4)

	require.NoError(t, err)
	assert.Equal(t, []string{"admin name X"}, record)
}

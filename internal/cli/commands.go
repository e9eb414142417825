package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/hexstr"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

// ErrTerminalOutput is returned by decode when stdout is a terminal and
// --force was not given.
var ErrTerminalOutput = errors.New("refusing to write binary data to a terminal (use --force)")

func (a *app) encode(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	stdinUses := 0
	for _, name := range inputs {
		if name == stdinName {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return errors.New("stdin can only be read once")
	}

	results := make([][]byte, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)

	for i, name := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, n, err := a.encodeInput(name)
			a.logger.WithInput(name).LogConvert(gctx, "encode", n, err)
			if err != nil {
				return fmt.Errorf("encode %s: %w", name, err)
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, out := range results {
		buf.Write(out)
		if len(inputs) > 1 {
			buf.WriteString("  ")
			buf.WriteString(inputs[i])
		}
		if a.cfg.Newline || len(inputs) > 1 {
			buf.WriteByte('\n')
		}
	}

	_, err := a.stdout.Write(buf.Bytes())

	return err
}

func (a *app) encodeInput(name string) ([]byte, int, error) {
	data, err := a.readInput(name)
	if err != nil {
		return nil, 0, err
	}

	h, err := hexstr.FromBytes(data)
	if err != nil {
		return nil, 0, err
	}

	out, err := a.codec.Encode(h)
	if err != nil {
		return nil, 0, err
	}

	return out, h.Len(), nil
}

func (a *app) decode(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return fmt.Errorf("usage: hexstr decode [TEXT | -]")
	}

	name := stdinName

	var (
		data []byte
		err  error
	)

	if cmd.NArg() == 1 && cmd.Args().First() != stdinName {
		name = "arg"
		data = []byte(cmd.Args().First())
	} else {
		data, err = a.readInput(stdinName)
		if err != nil {
			return err
		}
	}

	h, err := a.codec.Decode(data)
	a.logger.WithInput(name).LogConvert(ctx, "decode", h.Len(), err)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if !cmd.Bool("force") && a.isTerminal(a.stdout) {
		return ErrTerminalOutput
	}

	_, err = a.stdout.Write(h.Bytes())

	return err
}

func (a *app) check(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("usage: hexstr check TEXT...")
	}

	invalid := 0

	for _, text := range inputs {
		h, err := hexstr.Parse(text)
		a.logger.WithInput(text).LogConvert(ctx, "check", h.Len(), err)

		if err != nil {
			invalid++
			fmt.Fprintf(a.stdout, "invalid\t%s\t%v\n", text, err)
			continue
		}

		fmt.Fprintf(a.stdout, "ok %d\t%s\n", h.Len(), text)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d inputs invalid: %w", invalid, len(inputs), hexstr.ErrInvalidFormat)
	}

	return nil
}

func (a *app) readInput(name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if name == stdinName {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return nil, err
	}

	if data == nil {
		data = []byte{}
	}

	return data, nil
}

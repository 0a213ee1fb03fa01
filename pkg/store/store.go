// Package store persists employee collections in a single file using the
// codec format. Every read is a full load and every change is either a full
// rewrite or a single appended row.
package store

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/agentstation/roster/pkg/codec"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

// File is the storage file. It holds no cached records.
type File struct {
	path    string
	options *options
}

// New returns a File stored at path. An empty path means
// constants.DefaultStoreFile in the working directory.
func New(path string, opts ...Option) *File {
	if path == "" {
		path = constants.DefaultStoreFile
	}
	return &File{
		path:    path,
		options: defaults().apply(opts...),
	}
}

// Path returns the storage file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) logger(ctx context.Context) *zerolog.Logger {
	if f.options.logger != nil {
		return f.options.logger
	}
	return logging.FromContext(ctx)
}

// Load decodes the whole file. A missing file holds no records.
func (f *File) Load(ctx context.Context) ([]employees.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, canceled("load", err)
	}

	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		f.logger(ctx).Debug().Str("path", f.path).Msg("Storage file missing, no records")
		return []employees.Employee{}, nil
	}
	if err != nil {
		return nil, errors.WrapIO("open", f.path, err)
	}
	defer file.Close() //nolint:errcheck

	list, err := codec.Decode(bufio.NewReader(file))
	if err != nil {
		var perr *errors.ParseError
		if errors.As(err, &perr) {
			perr.File = f.path
			return nil, perr
		}
		return nil, errors.WrapIO("read", f.path, err)
	}

	f.logger(ctx).Debug().
		Str("path", f.path).
		Int("count", len(list)).
		Msg("Loaded employees")
	return list, nil
}

// Rewrite replaces the file content with the header and every record.
func (f *File) Rewrite(ctx context.Context, list []employees.Employee) error {
	if err := ctx.Err(); err != nil {
		return canceled("rewrite", err)
	}
	if err := f.ensureDir(); err != nil {
		return err
	}

	var err error
	if f.options.atomic {
		err = f.rewriteAtomic(list)
	} else {
		err = f.rewriteInPlace(list)
	}
	if err != nil {
		return err
	}

	f.logger(ctx).Debug().
		Str("path", f.path).
		Int("count", len(list)).
		Bool("atomic", f.options.atomic).
		Msg("Rewrote employees")
	return nil
}

func (f *File) rewriteAtomic(list []employees.Employee) error {
	pending, err := renameio.NewPendingFile(f.path,
		renameio.WithTempDir(filepath.Dir(f.path)),
		renameio.WithPermissions(constants.FilePermissions),
	)
	if err != nil {
		return errors.WrapIO("create", f.path, err)
	}
	defer pending.Cleanup() //nolint:errcheck

	if err := codec.Encode(pending, list); err != nil {
		return errors.WrapIO("write", f.path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return errors.WrapIO("replace", f.path, err)
	}
	return nil
}

func (f *File) rewriteInPlace(list []employees.Employee) error {
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", f.path, err)
	}
	if err := codec.Encode(file, list); err != nil {
		_ = file.Close()
		return errors.WrapIO("write", f.path, err)
	}
	if err := file.Close(); err != nil {
		return errors.WrapIO("close", f.path, err)
	}
	return nil
}

// Append adds one record at the end of the file, writing the header first
// when the file is missing or empty.
func (f *File) Append(ctx context.Context, e employees.Employee) (err error) {
	if err := ctx.Err(); err != nil {
		return canceled("append", err)
	}
	if err := f.ensureDir(); err != nil {
		return err
	}

	needHeader := true
	if info, statErr := os.Stat(f.path); statErr == nil {
		needHeader = info.Size() == 0
	} else if !os.IsNotExist(statErr) {
		return errors.WrapIO("stat", f.path, statErr)
	}

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", f.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", f.path, cerr)
		}
	}()

	if needHeader {
		if err := codec.EncodeHeader(file); err != nil {
			return errors.WrapIO("append", f.path, err)
		}
	}
	if err := codec.EncodeRow(file, e); err != nil {
		return errors.WrapIO("append", f.path, err)
	}
	if err := file.Sync(); err != nil {
		return errors.WrapIO("sync", f.path, err)
	}

	f.logger(ctx).Debug().
		Str("path", f.path).
		Str("pesel", e.PESEL).
		Bool("header", needHeader).
		Msg("Appended employee")
	return nil
}

func (f *File) ensureDir() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}

func canceled(op string, err error) error {
	return errors.WrapResource(op, "store", "", errors.Join(errors.ErrCanceled, err))
}

package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"litedata/internal/errors"
	"litedata/internal/export"
	"litedata/internal/log"
	"litedata/internal/session"
	"litedata/pkg/types"
)

// Flow asks for one field at a time, then the row count and the format, and
// submits the result through the session's gate.
type Flow struct {
	driver PromptDriver
	sess   *session.Session
}

// NewFlow creates a flow. The session must have finished loading the allowed
// types.
func NewFlow(driver PromptDriver, sess *session.Session) *Flow {
	return &Flow{driver: driver, sess: sess}
}

// Run walks through the questions and exports. It returns ErrAborted when the
// user interrupts.
func (f *Flow) Run(ctx context.Context) (*export.Result, error) {
	if f.sess.Allowed().Len() == 0 {
		return nil, errors.New("no data types available; is the service running?")
	}

	f.sess.Fields.Reset()
	for i := 0; ; i++ {
		if i > 0 {
			f.sess.Fields.Append()
		}
		if err := f.askField(ctx, i); err != nil {
			return nil, err
		}
		more, err := f.driver.Confirm(ctx, ConfirmConfig{Message: "Add another field?"})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	count, err := f.askCount(ctx)
	if err != nil {
		return nil, err
	}
	format, err := f.askFormat(ctx)
	if err != nil {
		return nil, err
	}

	res, err := f.sess.Submit(ctx, count, format)
	if n, ok := f.sess.Board.Current(); ok {
		msg := n.Message
		if n.Detail != "" {
			msg += " " + n.Detail
		}
		if infoErr := f.driver.Info(ctx, msg); infoErr != nil {
			log.LogWithError(infoErr).Warn("cannot print notice")
		}
	}
	return res, err
}

func (f *Flow) askField(ctx context.Context, index int) error {
	rows := f.sess.Rows()
	if index >= len(rows) {
		return errors.Newf("field %d vanished", index+1)
	}
	row := rows[index]

	var ids, labels []string
	for _, opt := range row.Options() {
		if opt.Selectable {
			ids = append(ids, opt.ID)
			labels = append(labels, opt.Label)
		}
	}
	choice, err := f.driver.Select(ctx, SelectConfig{
		Message:  fmt.Sprintf("%s: data type", row.Title()),
		Options:  labels,
		PageSize: 10,
	})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(ids) {
		return errors.NewInvalidInputError("no data type chosen", nil).WithContext("choice", choice)
	}
	row.SelectType(ids[choice])

	current, _ := f.sess.Fields.At(index)
	name, err := f.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("%s: column name", row.Title()),
		Default: current.Name,
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a name is required")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	row.SetName(strings.TrimSpace(name))
	return nil
}

func (f *Flow) askCount(ctx context.Context) (int, error) {
	gate := f.sess.Gate
	validate := func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		return gate.CheckCount(n)
	}
	raw, err := f.driver.Input(ctx, InputConfig{
		Message:   "How many rows?",
		Default:   strconv.Itoa(f.sess.Config.Export.DefaultRows),
		Validator: validate,
	})
	if err != nil {
		return 0, err
	}
	if err := validate(raw); err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(raw))
	return n, nil
}

func (f *Flow) askFormat(ctx context.Context) (types.FileFormat, error) {
	formats := types.FileFormats()
	labels := make([]string, len(formats))
	def := 0
	for i, fm := range formats {
		labels[i] = fm.Label()
		if fm == f.sess.Config.DefaultFormat() {
			def = i
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "File format", Options: labels, DefaultIndex: def})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(formats) {
		return "", errors.NewInvalidInputError("no file format chosen", nil).WithContext("choice", idx)
	}
	return formats[idx], nil
}

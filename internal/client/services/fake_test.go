package services

import (
	"context"
	"encoding/json"
)

type call struct {
	method string
	path   string
	in     any
}

// fakeRequester records every call and decodes a preset JSON reply into out.
type fakeRequester struct {
	calls []call

	reply    string
	download []byte
	err      error
}

func (f *fakeRequester) record(method, path string, in, out any) error {
	f.calls = append(f.calls, call{method: method, path: path, in: in})
	if f.err != nil {
		return f.err
	}
	if out != nil && f.reply != "" {
		return json.Unmarshal([]byte(f.reply), out)
	}
	return nil
}

func (f *fakeRequester) Get(_ context.Context, path string, out any) error {
	return f.record("GET", path, nil, out)
}

func (f *fakeRequester) Post(_ context.Context, path string, in, out any) error {
	return f.record("POST", path, in, out)
}

func (f *fakeRequester) Put(_ context.Context, path string, in, out any) error {
	return f.record("PUT", path, in, out)
}

func (f *fakeRequester) Delete(_ context.Context, path string, out any) error {
	return f.record("DELETE", path, nil, out)
}

func (f *fakeRequester) Download(_ context.Context, path string) ([]byte, error) {
	f.calls = append(f.calls, call{method: "GET", path: path})
	return f.download, f.err
}

func (f *fakeRequester) last() call {
	return f.calls[len(f.calls)-1]
}

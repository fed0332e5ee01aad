// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"
)

// UploadSourcecast publishes a sourcecast recording as a multipart form.
// The body is buffered up front so the renew-on-401 retry can replay it.
func (s *Session) UploadSourcecast(ctx context.Context, upload SourcecastUpload) error {
	var buffer bytes.Buffer
	form := multipart.NewWriter(&buffer)

	if err := form.WriteField("sourcecast[title]", upload.Title); err != nil {
		return fmt.Errorf("backend: building sourcecast form: %w", err)
	}
	if err := form.WriteField("sourcecast[description]", upload.Description); err != nil {
		return fmt.Errorf("backend: building sourcecast form: %w", err)
	}

	filename := strconv.FormatInt(time.Now().UnixMilli(), 10) + ".wav"
	audio, err := form.CreateFormFile("sourcecast[audio]", filename)
	if err != nil {
		return fmt.Errorf("backend: building sourcecast form: %w", err)
	}
	if _, err := audio.Write(upload.Audio); err != nil {
		return fmt.Errorf("backend: building sourcecast form: %w", err)
	}

	if err := form.WriteField("sourcecast[playbackData]", upload.PlaybackData); err != nil {
		return fmt.Errorf("backend: building sourcecast form: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("backend: building sourcecast form: %w", err)
	}

	return s.mutate(ctx, "sourcecast", CallOptions{
		RawBody:      buffer.Bytes(),
		ContentType:  form.FormDataContentType(),
		OmitAccept:   true,
		Refresh:      true,
		NoAutoLogout: true,
	})
}

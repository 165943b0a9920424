// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"

	apperrors "docquery/cli/internal/errors"
	"docquery/cli/internal/model"
)

// Run is the single call site for a query: it validates req, asks api, and checks
// that the answers line up with the questions. Every failure is an *errors.E.
func Run(ctx context.Context, api API, req model.Request, demo bool, token string) (model.Response, error) {
	if err := req.Validate(demo, token); err != nil {
		return model.Response{}, err
	}

	resp, err := api.Query(ctx, req)
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return model.Response{}, err
		}
		return model.Response{}, apperrors.Wrap(apperrors.Unexpected, msgUnexpected, err)
	}

	if err := model.CheckAlignment(req, resp); err != nil {
		return model.Response{}, err
	}
	return resp, nil
}

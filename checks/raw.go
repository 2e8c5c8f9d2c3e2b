/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package checks

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/suparena/ddbcompat"
	"github.com/suparena/ddbcompat/client"
	"github.com/suparena/ddbcompat/registry"
)

func init() {
	registry.Register(registry.Check{
		Name:         "raw_list_tables",
		Description:  "a hand-built ListTables request gets a well-formed JSON reply",
		EmulatorOnly: true,
		Fn: func(ctx context.Context, env *registry.Env) error {
			name, err := env.Tables.Table(ctx, ddbcompat.TableSS)
			if err != nil {
				return err
			}
			return verifyRawListTables(ctx, env.Config.Endpoint, name)
		},
	})
	registry.Register(registry.Check{
		Name:         "raw_validation_error",
		Description:  "a malformed request is rejected with a DynamoDB-shaped error body",
		EmulatorOnly: true,
		Fn: func(ctx context.Context, env *registry.Env) error {
			return verifyRawValidationError(ctx, env.Config.Endpoint)
		},
	})
}

// verifyRawListTables posts ListTables over plain HTTP and checks the
// reply parses and contains the given table.
func verifyRawListTables(ctx context.Context, endpoint, table string) error {
	resp, err := client.ManualRequest(ctx, nil, endpoint, "ListTables", map[string]any{})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("raw ListTables returned status %d: %s", resp.StatusCode, resp.Body)
	}
	var out struct {
		TableNames []string
	}
	if err := resp.Decode(&out); err != nil {
		return err
	}
	for _, n := range out.TableNames {
		if n == table {
			return nil
		}
	}
	return fmt.Errorf("raw ListTables reply with %d names does not include %s", len(out.TableNames), table)
}

// verifyRawValidationError sends DescribeTable without a TableName and
// expects a 400 with a __type discriminator, the shape the SDK relies
// on to classify errors.
func verifyRawValidationError(ctx context.Context, endpoint string) error {
	resp, err := client.ManualRequest(ctx, nil, endpoint, "DescribeTable", map[string]any{})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("malformed DescribeTable returned status %d, expected 400", resp.StatusCode)
	}
	var out struct {
		Type string `json:"__type"`
	}
	if err := resp.Decode(&out); err != nil {
		return fmt.Errorf("error body is not JSON: %w", err)
	}
	if !strings.Contains(out.Type, "Exception") {
		return fmt.Errorf("error body __type %q does not name an exception", out.Type)
	}
	return nil
}

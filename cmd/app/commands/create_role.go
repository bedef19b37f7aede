package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	authUseCase "github.com/allisson/resourceapi/internal/auth/usecase"
)

// RunCreateRole stores a role granting the given actions. Capability values may also be
// comma-separated. A role without capabilities is allowed and grants nothing.
//
// Requirements: Database must be migrated and accessible.
func RunCreateRole(
	ctx context.Context,
	roleUseCase authUseCase.RoleUseCase,
	logger *slog.Logger,
	name string,
	capabilities []string,
	format string,
	io IOTuple,
) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("role name cannot be empty")
	}

	caps, err := authDomain.ParseCapabilities(splitList(capabilities))
	if err != nil {
		return fmt.Errorf("invalid capabilities: %w", err)
	}

	logger.Info("creating new role", slog.String("name", name))

	role := &authDomain.Role{Name: name, Capabilities: caps}
	if err := roleUseCase.Create(ctx, role); err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	if format == "json" {
		outputJSON(map[string]any{
			"name":         role.Name,
			"capabilities": role.Capabilities.Strings(),
		}, io.Writer)
	} else {
		outputRoleText(role, io.Writer)
	}

	logger.Info("role created successfully",
		slog.String("name", role.Name),
		slog.Any("capabilities", role.Capabilities.Strings()),
	)

	return nil
}

func outputRoleText(role *authDomain.Role, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nRole created successfully!")
	_, _ = fmt.Fprintf(writer, "Name: %s\n", role.Name)
	_, _ = fmt.Fprintf(writer, "Capabilities: %s\n", strings.Join(role.Capabilities.Strings(), ", "))
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

package usecases

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// ImportFile is the YAML seed format:
//
//	users:
//	  - username: jdoe
//	    email: jdoe@corp.example
//	    password: initial-pass-1
//	    role: it_staff
//	    full_name: Jane Doe
//	    department: IT
//	    active: true
type ImportFile struct {
	Users []ImportEntry `yaml:"users"`
}

type ImportEntry struct {
	Username   string `yaml:"username"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Role       string `yaml:"role"`
	FullName   string `yaml:"full_name"`
	Department string `yaml:"department"`
	Active     *bool  `yaml:"active"`
}

type ImportUsersResult struct {
	Created []string
	Skipped []string
	Failed  map[string]string
}

// ImportUsersUseCase seeds accounts in bulk. Existing usernames or emails
// are skipped so the same file can be applied repeatedly.
type ImportUsersUseCase struct {
	createUser *CreateUserUseCase
	logger     logger.Interface
}

func NewImportUsersUseCase(createUser *CreateUserUseCase, logger logger.Interface) *ImportUsersUseCase {
	return &ImportUsersUseCase{createUser: createUser, logger: logger}
}

func ParseImportFile(r io.Reader) (*ImportFile, error) {
	var f ImportFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, errors.NewValidationError("invalid import file", err.Error())
	}
	return &f, nil
}

func (uc *ImportUsersUseCase) Execute(ctx context.Context, r io.Reader) (*ImportUsersResult, error) {
	file, err := ParseImportFile(r)
	if err != nil {
		return nil, err
	}

	result := &ImportUsersResult{Failed: make(map[string]string)}
	for i, entry := range file.Users {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		active := true
		if entry.Active != nil {
			active = *entry.Active
		}
		_, err := uc.createUser.Execute(ctx, CreateUserCommand{
			Username:   entry.Username,
			Email:      entry.Email,
			Password:   entry.Password,
			FullName:   entry.FullName,
			Department: entry.Department,
			Role:       entry.Role,
			Active:     active,
		})

		key := entry.Username
		if key == "" {
			key = fmt.Sprintf("entry #%d", i+1)
		}
		switch {
		case err == nil:
			result.Created = append(result.Created, key)
		case errors.IsConflictError(err):
			result.Skipped = append(result.Skipped, key)
		default:
			result.Failed[key] = err.Error()
		}
	}

	uc.logger.Infow("user import finished",
		"created", len(result.Created),
		"skipped", len(result.Skipped),
		"failed", len(result.Failed),
	)
	return result, nil
}

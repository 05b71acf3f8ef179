// Package seed fills a database with demo data. Development only.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/entity"
	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

type Options struct {
	Email    string
	Password string
	Notes    int
	// Trashed is how many of the seeded notes end up in the trash.
	Trashed int
}

type Seeder struct {
	auth  service.IAuthService
	notes service.INoteService
	faker *gofakeit.Faker
}

// NewSeeder goes through the services so seeded rows obey the same rules as
// user input. A zero seed picks a random one.
func NewSeeder(auth service.IAuthService, notes service.INoteService, seed int64) *Seeder {
	return &Seeder{auth: auth, notes: notes, faker: gofakeit.New(seed)}
}

// DemoUser registers the demo account, or reuses it when it already exists,
// and gives it fresh notes.
func (s *Seeder) DemoUser(ctx context.Context, opts Options) (*entity.User, error) {
	user, err := s.auth.Register(ctx, &dto.RegisterRequest{
		Name:     s.faker.Name(),
		Email:    opts.Email,
		Password: opts.Password,
	})
	if errors.Is(err, apperror.ErrDuplicateEmail) {
		user, err = s.auth.Authenticate(ctx, &dto.LoginRequest{Email: opts.Email, Password: opts.Password})
	}
	if err != nil {
		return nil, fmt.Errorf("demo user: %w", err)
	}

	for i := 0; i < opts.Notes; i++ {
		note, err := s.notes.Create(ctx, user.Id, s.fakeNote())
		if err != nil {
			return nil, fmt.Errorf("demo note %d: %w", i, err)
		}
		if i < opts.Trashed {
			if err := s.notes.SoftDelete(ctx, user.Id, note.Id); err != nil {
				return nil, fmt.Errorf("trash demo note %d: %w", note.Id, err)
			}
		}
	}

	return user, nil
}

func (s *Seeder) fakeNote() *dto.NoteRequest {
	var body strings.Builder
	fmt.Fprintf(&body, "## %s\n\n", s.faker.HackerPhrase())
	body.WriteString(s.faker.Paragraph(2, 3, 12, "\n\n"))
	body.WriteString("\n\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&body, "- **%s** %s\n", s.faker.Verb(), s.faker.Noun())
	}

	title := s.faker.Sentence(4)
	if len([]rune(title)) > dto.NoteTitleMaxLength {
		title = string([]rune(title)[:dto.NoteTitleMaxLength])
	}
	return &dto.NoteRequest{Title: title, Content: body.String()}
}

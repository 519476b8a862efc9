package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	"github.com/RISHABH72git/SkillBridge/internal/storage"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(string) (string, error) {
	return f.text, f.err
}

type fakeInference struct {
	completion string
	err        error
}

func (f fakeInference) Complete(context.Context, string) (string, error) {
	return f.completion, f.err
}

type fakeUserRepo struct {
	resumes   map[string]*domain.Resume
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{resumes: make(map[string]*domain.Resume)}
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeUserRepo) SetActive(context.Context, string, bool) error { return nil }

func (f *fakeUserRepo) UpdateResume(_ context.Context, userID string, resume *domain.Resume) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.resumes[userID] = resume
	return nil
}

const validCompletion = `{
  "full_name": "Asha Rao",
  "email": "asha@example.com",
  "phone": "+91 99999 00000",
  "location": "Bengaluru, India",
  "education": [{"degree": "B.Tech", "institution": "IIT Madras", "graduation_year": "2019"}],
  "work_experience": [{"role": "Backend Engineer", "company": "Acme", "duration": "Jan 2021 - Mar 2023"}],
  "skills": ["Go", "PostgreSQL", "communication"]
}`

func newTestHandler(t *testing.T, extractor TextExtractor, client fakeInference, users *fakeUserRepo) *Handler {
	t.Helper()
	store, err := storage.NewResumeStore(t.TempDir())
	require.NoError(t, err)
	return NewHandler(store, extractor, client, users, nil, zap.NewNop())
}

func TestProcessTask(t *testing.T) {
	tests := []struct {
		name       string
		extractor  fakeExtractor
		inference  fakeInference
		wantErr    bool
		wantResume bool
	}{
		{
			name:       "valid completion persisted",
			extractor:  fakeExtractor{text: "some resume text"},
			inference:  fakeInference{completion: validCompletion},
			wantResume: true,
		},
		{
			name:      "non-JSON completion leaves user unchanged",
			extractor: fakeExtractor{text: "some resume text"},
			inference: fakeInference{completion: "Sorry, I cannot help with that."},
			wantErr:   true,
		},
		{
			name:      "extraction failure is terminal",
			extractor: fakeExtractor{err: errors.New("broken file")},
			inference: fakeInference{completion: validCompletion},
			wantErr:   true,
		},
		{
			name:      "inference failure is terminal",
			extractor: fakeExtractor{text: "some resume text"},
			inference: fakeInference{err: errors.New("timeout")},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			handler := newTestHandler(t, tt.extractor, tt.inference, users)

			task, err := NewResumeIngestTask("user-1")
			require.NoError(t, err)

			err = handler.ProcessTask(context.Background(), task)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, users.resumes)
				return
			}
			require.NoError(t, err)
			require.Contains(t, users.resumes, "user-1")

			resume := users.resumes["user-1"]
			assert.Equal(t, "Asha Rao", resume.FullName)
			assert.Equal(t, []string{"Go", "PostgreSQL", "communication"}, resume.Skills)
			require.Len(t, resume.Education, 1)
			assert.Equal(t, "IIT Madras", resume.Education[0].Institution)
			require.Len(t, resume.WorkExperience, 1)
			assert.Equal(t, "Acme", resume.WorkExperience[0].Company)
		})
	}
}

func TestProcessTaskPersistFailure(t *testing.T) {
	users := newFakeUserRepo()
	users.updateErr = errors.New("db down")
	handler := newTestHandler(t, fakeExtractor{text: "text"}, fakeInference{completion: validCompletion}, users)

	task, err := NewResumeIngestTask("user-1")
	require.NoError(t, err)

	err = handler.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.Empty(t, users.resumes)
}

func TestBuildResumePrompt(t *testing.T) {
	prompt := BuildResumePrompt("RESUME BODY")

	assert.Contains(t, prompt, "RESUME BODY")
	for _, field := range []string{"full_name", "email", "phone", "location", "education", "work_experience", "skills"} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "valid JSON object")
}

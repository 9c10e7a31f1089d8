//go:build integration

package config

import (
	"formbuilder/repository"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var postgresDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600)

	cfg := &Config{
		DatabaseDriver:   "postgres",
		DatabaseHost:     "localhost",
		DatabasePort:     resource.GetPort("5432/tcp"),
		PostgresUser:     "postgres",
		PostgresPassword: "postgres",
		DatabaseName:     "postgres",
	}
	// the container may not accept connections yet
	if err := pool.Retry(func() error {
		var err error
		postgresDB, err = InitDB(cfg)
		return err
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func TestPostgresDeleteFormCascades(t *testing.T) {
	forms := repository.NewFormRepository(postgresDB)
	questions := repository.NewQuestionRepository(postgresDB)
	options := repository.NewOptionRepository(postgresDB)
	conditionals := repository.NewConditionalRepository(postgresDB)

	form, err := forms.SaveForm(&repository.Form{Id: repository.NewId("form"), Title: "health"})
	require.NoError(t, err)
	parent, err := questions.SaveQuestion(&repository.Question{Id: repository.NewId("q"), FormId: form.Id, Title: "smoker", Type: repository.YesNo})
	require.NoError(t, err)
	yes, err := options.SaveOption(&repository.Option{Id: repository.NewId("opt"), QuestionId: parent.Id, Label: "Sim"})
	require.NoError(t, err)
	sub, err := questions.SaveQuestion(&repository.Question{Id: repository.NewId("q"), FormId: form.Id, Title: "how many", Order: 1, IsSubQuestion: true, Type: repository.Integer})
	require.NoError(t, err)
	conditional, err := conditionals.SaveConditional(&repository.Conditional{Id: repository.NewId("cond"), RevealingOptionId: yes.Id, RevealedQuestionId: sub.Id})
	require.NoError(t, err)

	require.NoError(t, forms.DeleteForm(form.Id))

	remaining, err := questions.GetQuestionsByFormId(form.Id)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	_, err = options.GetOptionById(yes.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = conditionals.GetConditionalById(conditional.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, forms.DeleteForm(form.Id), gorm.ErrRecordNotFound)
}

func TestPostgresDeleteOrphans(t *testing.T) {
	forms := repository.NewFormRepository(postgresDB)
	questions := repository.NewQuestionRepository(postgresDB)
	conditionals := repository.NewConditionalRepository(postgresDB)

	_, err := questions.SaveQuestion(&repository.Question{Id: repository.NewId("q"), FormId: "form-gone", Title: "lost", Type: repository.FreeText})
	require.NoError(t, err)
	_, err = conditionals.SaveConditional(&repository.Conditional{Id: repository.NewId("cond"), RevealingOptionId: "opt-gone", RevealedQuestionId: "q-gone"})
	require.NoError(t, err)

	counts, err := forms.DeleteOrphans()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, counts.Questions, int64(1))
	assert.GreaterOrEqual(t, counts.Conditionals, int64(1))
}

func TestPostgresSubmissionJSON(t *testing.T) {
	submissions := repository.NewSubmissionRepository(postgresDB)
	submission, err := submissions.SaveSubmission(&repository.Submission{
		Id:          repository.NewId("sub"),
		FormId:      "form-json",
		Answers:     datatypes.JSON(`{"q-1":["opt-1","opt-2"],"q-2":3.5}`),
		OpenAnswers: datatypes.JSON(`{}`),
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)

	stored, err := submissions.GetSubmissionById(submission.Id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"q-1":["opt-1","opt-2"],"q-2":3.5}`, string(stored.Answers))
}

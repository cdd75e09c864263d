package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codemaster/internal/config"
	"codemaster/internal/errors"
	"codemaster/internal/generation"
	"codemaster/internal/generation/generationtest"
	"codemaster/internal/types"
)

const zigGuide = `{"description":"A systems language","useCases":["Embedded"],"helloWorld":"fn main(){}","tools":[]}`

func setConfig(t *testing.T, apiKey string) {
	t.Helper()
	c := config.DefaultConfig()
	c.Locale = "en"
	c.Generation.APIKey = apiKey
	c.Logging.File = filepath.Join(t.TempDir(), "codemaster.log")
	cfg = c
	t.Cleanup(func() { cfg = nil })
}

func withGenerator(t *testing.T, gen *generationtest.Generator) {
	t.Helper()
	orig := newClient
	newClient = func(_ context.Context, opts generation.Options) (*generation.Client, error) {
		return generation.NewWithGenerator(gen, opts), nil
	}
	t.Cleanup(func() { newClient = orig })
}

func execute(t *testing.T, run func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	err := run(cmd, args)
	return buf.String(), err
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "Visual Basic", joinArgs([]string{"Visual", "Basic"}))
	assert.Equal(t, "", joinArgs(nil))
}

func TestCatalogCmd(t *testing.T) {
	setConfig(t, "")
	out, err := execute(t, runCatalog)
	require.NoError(t, err)
	for _, name := range []string{"Python", "JavaScript", "C++", "Swift", "Go"} {
		assert.Contains(t, out, name)
	}
}

func TestGuideCmd_CatalogWithoutAPIKey(t *testing.T) {
	setConfig(t, "")
	gen := generationtest.Text(zigGuide)
	withGenerator(t, gen)

	out, err := execute(t, runGuide, "Python")
	require.NoError(t, err)
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Beginner")
	assert.Equal(t, 0, gen.CallCount())
}

func TestGuideCmd_MissWithoutAPIKey(t *testing.T) {
	setConfig(t, "")
	_, err := execute(t, runGuide, "Zig")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrLanguageNotFound))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGuideCmd_SynthesizedJSON(t *testing.T) {
	setConfig(t, "test-key")
	gen := generationtest.Text(zigGuide)
	withGenerator(t, gen)
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })

	out, err := execute(t, runGuide, "Zig")
	require.NoError(t, err)

	var entity types.LanguageEntity
	require.NoError(t, json.Unmarshal([]byte(out), &entity))
	assert.Equal(t, "zig", entity.ID)
	assert.Equal(t, types.DifficultyIntermediate, entity.Difficulty)
	assert.Equal(t, "fn main(){}", entity.HelloWorld)
	assert.Equal(t, 1, gen.CallCount())
}

func TestGuideCmd_Unparseable(t *testing.T) {
	setConfig(t, "test-key")
	withGenerator(t, generationtest.Text("no idea"))

	out, err := execute(t, runGuide, "Zig")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, describeError(err), "Sorry, we couldn't find details for this language.")
}

func TestRoadmapCmd_RequiresAPIKey(t *testing.T) {
	setConfig(t, "")
	_, err := execute(t, runRoadmap, "todo", "app")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, describeError(err), "hint: set GEMINI_API_KEY")
}

func TestRoadmapCmd(t *testing.T) {
	setConfig(t, "test-key")
	gen := generationtest.Text(`{"title":"Todo App","difficulty":"Beginner","languages":["HTML"],"steps":[{"title":"Plan","description":"List features"}]}`)
	withGenerator(t, gen)

	out, err := execute(t, runRoadmap, "a", "todo", "app")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo App")
	assert.Contains(t, out, "Plan")
	assert.Contains(t, gen.Calls()[0].Contents[0].Parts[0].Text, `"a todo app"`)
}

func TestAskCmd(t *testing.T) {
	setConfig(t, "test-key")
	withGenerator(t, generationtest.Text("Start with Python!"))

	out, err := execute(t, runAsk, "what", "first?")
	require.NoError(t, err)
	assert.Contains(t, out, "Start with Python!")
}

func TestConfigInitCmd(t *testing.T) {
	setConfig(t, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	configPath = path
	t.Cleanup(func() { configPath = ""; forceInit = false })

	out, err := execute(t, runConfigInit)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultModel, loaded.Generation.Model)

	_, err = execute(t, runConfigInit)
	require.Error(t, err, "refuses to overwrite")

	forceInit = true
	_, err = execute(t, runConfigInit)
	require.NoError(t, err)
}

func TestConfigShowMasksKey(t *testing.T) {
	setConfig(t, "secret-key")
	out, err := execute(t, runConfigShow)
	require.NoError(t, err)
	assert.NotContains(t, out, "secret-key")
	assert.Contains(t, out, "********")
	assert.Equal(t, "secret-key", cfg.Generation.APIKey, "shown copy only")
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "CODEMASTER_MODEL", "CODEMASTER_LOCALE"} {
		t.Setenv(env, "")
	}
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	langFlag, apiKey, modelFlag = "english", "flag-key", "gemini-test"
	t.Cleanup(func() { configPath, langFlag, apiKey, modelFlag = "", "", "", "" })

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, types.LocaleEnglish, c.GetLocale())
	assert.Equal(t, "flag-key", c.Generation.APIKey)
	assert.Equal(t, "gemini-test", c.Generation.Model)

	langFlag = "fr"
	_, err = loadConfig()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestDescribeError(t *testing.T) {
	setConfig(t, "")
	cfg.Locale = "ar"

	msg := describeError(errors.Mark(errors.New("boom"), errors.ErrLanguageNotFound))
	assert.Equal(t, "عذراً، لم نتمكن من العثور على هذه اللغة.", msg)

	assert.Equal(t, "plain failure", describeError(errors.New("plain failure")))
}

func TestMetricsServer(t *testing.T) {
	require.NoError(t, startMetricsServer("127.0.0.1:0"))
	require.NotNil(t, metricsServer)
	assert.NotNil(t, metricsServer.ErrorLog, "server errors go to the boot logger")
	stopMetricsServer()
	assert.Nil(t, metricsServer)

	require.NoError(t, startMetricsServer(""))
	assert.Nil(t, metricsServer)
}

func TestRunRoot_CleansUpAfterFailure(t *testing.T) {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "CODEMASTER_MODEL", "CODEMASTER_LOCALE"} {
		t.Setenv(env, "")
	}
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { configPath, langFlag, metricsAddr, cfg = "", "", "", nil })

	err := runRoot(context.Background(), []string{
		"roadmap", "todo",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--lang", "en",
		"--metrics-addr", "127.0.0.1:0",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Nil(t, metricsServer, "metrics server stopped even though the command failed")
}

func TestMain(m *testing.M) {
	// keep tests away from the real home directory
	home, err := os.MkdirTemp("", "codemaster-home")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", home)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

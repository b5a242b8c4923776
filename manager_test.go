package ttfasset

import "errors"
import "testing"
import "testing/fstest"

import "github.com/stretchr/testify/suite"
import "golang.org/x/image/font/gofont/goregular"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

import "github.com/tinne26/ttfasset/generator"

// --- Test Suite Preparation ------------------------------------------------

type ManagerTestEnviron struct {
	suite.Suite
	manager *Manager
}

func TestManager(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfasset")
	defer teardown()
	suite.Run(t, new(ManagerTestEnviron))
}

func (env *ManagerTestEnviron) SetupTest() {
	fsys := fstest.MapFS{
		"fonts/goregular.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"fonts/broken.otf": &fstest.MapFile{ Data: []byte("broken") },
	}
	env.manager = NewManager()
	env.manager.SetFontLoaders(NewFSResolver(fsys))
}

type dependentLoader struct{ *TrueTypeLoader }
func (dependentLoader) Dependencies(string, FileHandle, *Parameters) []AssetDescriptor {
	return []AssetDescriptor{ { Name: "fonts/other.ttf" } }
}

type nilAssetLoader struct{ *TrueTypeLoader }
func (nilAssetLoader) Load(*Manager, string, FileHandle, *Parameters) (*generator.BitmapFont, error) {
	return nil, nil
}

// --- Tests -----------------------------------------------------------------

func (env *ManagerTestEnviron) TestLoadSized() {
	font, err := env.manager.Load("fonts/goregular_s18.ttf", ParametersFromFilename("fonts/goregular_s18.ttf"))
	env.Require().NoError(err)
	env.Equal(18, font.Size())
	env.Equal(generator.DefaultChars, font.Characters())

	font, err = env.manager.Load("fonts/goregular_s18.ttf", nil)
	env.Require().NoError(err)
	env.Equal(DefaultFontSize, font.Size(), "expected default size without parameters")
}

func (env *ManagerTestEnviron) TestLoadCaseInsensitiveExtension() {
	env.NotNil(env.manager.Loader("fonts/GOREGULAR.TTF"))
	env.NotNil(env.manager.Loader("fonts/goregular.ttf.gz"))
	env.Nil(env.manager.Loader("fonts/goregular.png"))
}

func (env *ManagerTestEnviron) TestLoadErrors() {
	_, err := env.manager.Load("images/cat.png", nil)
	env.True(errors.Is(err, ErrNoLoader), "expected ErrNoLoader, got %v", err)

	_, err = env.manager.Load("fonts/broken.otf", nil)
	env.Error(err)

	_, err = env.manager.Load("fonts/goregular.ttf", SizedParameters(-1))
	env.True(errors.Is(err, ErrInvalidFontSize), "expected ErrInvalidFontSize, got %v", err)
}

func (env *ManagerTestEnviron) TestSetLoader() {
	env.manager.SetLoader("TTF", nil)
	env.Nil(env.manager.Loader("fonts/goregular.ttf"))

	env.manager.SetLoader("ttf", dependentLoader{ NewTrueTypeLoader(AbsoluteResolver{}) })
	_, err := env.manager.Load("fonts/goregular.ttf", nil)
	env.True(errors.Is(err, ErrDependencies), "expected ErrDependencies, got %v", err)

	// longest extension wins
	gzLoader := NewTrueTypeLoader(AbsoluteResolver{})
	env.manager.SetLoader(".ttf.gz", gzLoader)
	env.Same(gzLoader, env.manager.Loader("fonts/goregular.ttf.gz"))
}

func (env *ManagerTestEnviron) TestLoadNilAsset() {
	env.manager.SetLoader("ttf", nilAssetLoader{ NewTrueTypeLoader(AbsoluteResolver{}) })
	var font *generator.BitmapFont
	var err error
	env.NotPanics(func() { font, err = env.manager.Load("fonts/goregular.ttf", nil) })
	env.Nil(font)
	env.True(errors.Is(err, ErrNilAsset), "expected ErrNilAsset, got %v", err)
}

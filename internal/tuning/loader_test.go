package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const header = "PaddleMoveUnitsPerSecond,BallLifeSeconds,EasyBallImpulseForce,EasyMinSpawnSeconds,EasyMaxSpawnSeconds," +
	"MediumBallImpulseForce,MediumMinSpawnSeconds,MediumMaxSpawnSeconds,HardBallImpulseForce,HardMinSpawnSeconds," +
	"HardMaxSpawnSeconds,BallsPerGame,StandardBlockPoints,BonusBlockPoints,EffectBlockPoints,StandardBlockProbability," +
	"BonusBlockProbability,FreezerBlockProbability,SpeedupBlockProbability,FreezerSeconds,SpeedupFactor,SpeedupSeconds"

// customTokens differ from the defaults at every index.
var customTokens = []string{
	"12", "8", "250", "4", "9", "350", "2.5", "6", "450", "1.5", "4",
	"3", "10", "20", "50", "60", "25", "10", "5", "3", "1.5", "4",
}

// customValues is what customTokens should load as, in field order.
var customValues = []float64{
	12, 8, 250, 4, 9, 350, 2.5, 6, 450, 1.5, 4,
	3, 10, 20, 50, 0.6, 0.25, 0.1, 0.05, 3, 1.5, 4,
}

// accessors reads a record in field order.
var accessors = []func(Record) float64{
	func(r Record) float64 { return r.PaddleMoveUnitsPerSecond() },
	func(r Record) float64 { return r.BallLifeSeconds() },
	func(r Record) float64 { return r.EasyBallImpulseForce() },
	func(r Record) float64 { return r.EasyMinSpawnSeconds() },
	func(r Record) float64 { return r.EasyMaxSpawnSeconds() },
	func(r Record) float64 { return r.MediumBallImpulseForce() },
	func(r Record) float64 { return r.MediumMinSpawnSeconds() },
	func(r Record) float64 { return r.MediumMaxSpawnSeconds() },
	func(r Record) float64 { return r.HardBallImpulseForce() },
	func(r Record) float64 { return r.HardMinSpawnSeconds() },
	func(r Record) float64 { return r.HardMaxSpawnSeconds() },
	func(r Record) float64 { return float64(r.BallsPerGame()) },
	func(r Record) float64 { return float64(r.StandardBlockPoints()) },
	func(r Record) float64 { return float64(r.BonusBlockPoints()) },
	func(r Record) float64 { return float64(r.EffectBlockPoints()) },
	func(r Record) float64 { return r.StandardBlockProbability() },
	func(r Record) float64 { return r.BonusBlockProbability() },
	func(r Record) float64 { return r.FreezerBlockProbability() },
	func(r Record) float64 { return r.SpeedupBlockProbability() },
	func(r Record) float64 { return r.FreezerSeconds() },
	func(r Record) float64 { return r.SpeedupFactor() },
	func(r Record) float64 { return r.SpeedupSeconds() },
}

func writeAsset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func assertPrefixApplied(t *testing.T, rec Record, applied int) {
	t.Helper()

	defaults := Defaults()
	for i, get := range accessors {
		if i < applied {
			assert.Equalf(t, customValues[i], get(rec), "field %d should hold the parsed value", i)
			continue
		}
		assert.Equalf(t, get(defaults), get(rec), "field %d should hold its default", i)
	}
}

func TestLoadWellFormed(t *testing.T) {
	path := writeAsset(t, header+"\n"+strings.Join(customTokens, ",")+"\n")

	rec, res := LoadDetailed(path)

	require.NoError(t, res.Err)
	assert.Equal(t, StatusLoaded, res.Status)
	assert.Equal(t, FieldCount, res.Applied)
	assert.True(t, res.Complete())
	assertPrefixApplied(t, rec, FieldCount)
	assert.Equal(t, rec, Load(path))
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)

	rec, res := LoadDetailed(path)

	assert.Equal(t, Defaults(), rec)
	assert.Equal(t, StatusDefaults, res.Status)
	assert.Zero(t, res.Applied)
	assert.ErrorIs(t, res.Err, ErrLoadFailure)
	assert.ErrorIs(t, res.Err, os.ErrNotExist)
	assert.Equal(t, Defaults(), Load(path))
}

func TestLoadShippedAssetMatchesDefaults(t *testing.T) {
	rec, res := LoadDetailed(filepath.Join("..", "..", "assets", FileName))

	require.NoError(t, res.Err)
	assert.Equal(t, Defaults(), rec)
}

func TestParseShortContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty", content: "", wantErr: ErrMissingValues},
		{name: "header only", content: header + "\n", wantErr: ErrMissingValues},
		{name: "blank values line", content: header + "\n\n", wantErr: ErrLoadFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, res := Parse(strings.NewReader(tc.content))

			assert.Equal(t, Defaults(), rec)
			assert.Equal(t, StatusDefaults, res.Status)
			assert.ErrorIs(t, res.Err, tc.wantErr)
		})
	}
}

func TestParseTooFewTokens(t *testing.T) {
	for _, count := range []int{1, 7, 11, 15, 21} {
		row := strings.Join(customTokens[:count], ",")

		rec, res := Parse(strings.NewReader(header + "\n" + row))

		assert.Equal(t, StatusPartial, res.Status)
		assert.Equal(t, count, res.Applied)
		assert.ErrorIs(t, res.Err, ErrMissingField)
		assertPrefixApplied(t, rec, count)
	}
}

func TestParseNonNumericToken(t *testing.T) {
	for k := 0; k < FieldCount; k++ {
		tokens := append([]string(nil), customTokens...)
		tokens[k] = "abc"

		rec, res := Parse(strings.NewReader(header + "\n" + strings.Join(tokens, ",")))

		assert.Equalf(t, k, res.Applied, "applied count for bad token at %d", k)
		assert.ErrorIs(t, res.Err, ErrLoadFailure)
		assertPrefixApplied(t, rec, k)
	}
}

func TestParseIntegerFieldRejectsFraction(t *testing.T) {
	tokens := append([]string(nil), customTokens...)
	tokens[11] = "3.5"

	rec, res := Parse(strings.NewReader(header + "\n" + strings.Join(tokens, ",")))

	assert.Equal(t, 11, res.Applied)
	assert.Equal(t, Defaults().BallsPerGame(), rec.BallsPerGame())
	assert.Contains(t, res.Err.Error(), "BallsPerGame")
}

func TestParseRejectsNonDecimalForms(t *testing.T) {
	tests := []struct {
		name  string
		index int
		token string
	}{
		{name: "hex float", index: 0, token: "0x1p4"},
		{name: "signed hex float", index: 3, token: "-0X10"},
		{name: "digit separator", index: 5, token: "3_50"},
		{name: "integer above int32", index: 11, token: "99999999999"},
		{name: "integer below int32", index: 12, token: "-2147483649"},
		{name: "hex integer", index: 13, token: "0x14"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := append([]string(nil), customTokens...)
			tokens[tc.index] = tc.token

			rec, res := Parse(strings.NewReader(header + "\n" + strings.Join(tokens, ",")))

			assert.Equal(t, tc.index, res.Applied)
			assert.ErrorIs(t, res.Err, ErrLoadFailure)
			assertPrefixApplied(t, rec, tc.index)
		})
	}
}

func TestParseFirstBadTokenWins(t *testing.T) {
	tokens := append([]string(nil), customTokens...)
	tokens[0] = "0x1p4"
	tokens[11] = "99999999999"

	rec, res := Parse(strings.NewReader(header + "\n" + strings.Join(tokens, ",")))

	assert.Equal(t, StatusDefaults, res.Status)
	assert.Equal(t, 0, res.Applied)
	assert.Equal(t, Defaults(), rec)
}

func TestParseAcceptsDecimalEdgeForms(t *testing.T) {
	tokens := append([]string(nil), customTokens...)
	tokens[0] = "1.2e1"
	tokens[1] = "+8"
	tokens[11] = "2147483647"

	rec, res := Parse(strings.NewReader(header + "\n" + strings.Join(tokens, ",")))

	require.True(t, res.Complete(), "unexpected error: %v", res.Err)
	assert.Equal(t, 12.0, rec.PaddleMoveUnitsPerSecond())
	assert.Equal(t, 8.0, rec.BallLifeSeconds())
	assert.Equal(t, 2147483647, rec.BallsPerGame())
}

func TestParseProbabilityConversion(t *testing.T) {
	tokens := append([]string(nil), customTokens...)
	tokens[15], tokens[16], tokens[17], tokens[18] = "20", "20", "20", "20"

	rec, res := Parse(strings.NewReader(header + "\n" + strings.Join(tokens, ",")))

	require.True(t, res.Complete())
	assert.Equal(t, 0.2, rec.StandardBlockProbability())
	assert.Equal(t, 0.2, rec.BonusBlockProbability())
	assert.Equal(t, 0.2, rec.FreezerBlockProbability())
	assert.Equal(t, 0.2, rec.SpeedupBlockProbability())
}

func TestParseToleratesWhitespaceAndExtraTokens(t *testing.T) {
	row := " " + strings.Join(customTokens, " , ") + ",99,100\r\n"

	rec, res := Parse(strings.NewReader(header + "\r\n" + row))

	require.NoError(t, res.Err)
	assertPrefixApplied(t, rec, FieldCount)
}

func TestParseLongValuesLine(t *testing.T) {
	row := strings.Join(customTokens, ",") + "," + strings.Repeat("7", 70000)
	longHeader := header + "," + strings.Repeat("x", 70000)

	rec, res := Parse(strings.NewReader(longHeader + "\n" + row + "\n"))

	require.NoError(t, res.Err)
	assertPrefixApplied(t, rec, FieldCount)
}

func TestParseIgnoresHeaderContent(t *testing.T) {
	rec, res := Parse(strings.NewReader("not,the,right,names\n" + strings.Join(customTokens, ",")))

	require.True(t, res.Complete())
	assertPrefixApplied(t, rec, FieldCount)
}

func TestLoaderLogsAndReturnsSameRecord(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))

	path := writeAsset(t, header+"\n"+strings.Join(customTokens[:5], ","))
	rec, res := loader.Load(path)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, Load(path), rec)

	rec, res = NewLoader(nil).Load(filepath.Join(t.TempDir(), FileName))
	assert.Equal(t, Defaults(), rec)
	assert.True(t, errors.Is(res.Err, ErrLoadFailure))
}

func TestFieldNamesMatchHeader(t *testing.T) {
	assert.Equal(t, strings.Split(header, ","), FieldNames())
	assert.Len(t, accessors, FieldCount)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loaded", StatusLoaded.String())
	assert.Equal(t, "partial", StatusPartial.String())
	assert.Equal(t, "defaults", StatusDefaults.String())
}

package doxygen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCompoundInfo(t *testing.T) {
	t.Parallel()

	t.Run("extracts name kind and brief", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="classTimeStepping" kind="class" language="C++">
  <compoundname>TimeStepping</compoundname>
  <briefdescription>
    <para>Event-capturing time-stepping simulation. </para>
  </briefdescription>
</compounddef>`)

		info, err := doxygen.ExtractCompoundInfo(el)

		require.NoError(t, err)
		assert.Equal(t, "TimeStepping", info.Name)
		assert.Equal(t, "class", info.Kind)
		assert.Equal(t, "Event-capturing time-stepping simulation. ", info.Brief)
	})

	t.Run("flattens nested markup to plain text", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="classSpaceFilter" kind="class">
  <compoundname>SpaceFilter</compoundname>
  <briefdescription>
    <para>Broad-phase contact detection over a <ref refid="classSiconosMatrix" kindref="compound">grid</ref> of cells.</para>
  </briefdescription>
</compounddef>`)

		info, err := doxygen.ExtractCompoundInfo(el)

		require.NoError(t, err)
		assert.Equal(t, "Broad-phase contact detection over a grid of cells.", info.Brief)
	})

	t.Run("normalizes the first inline math expression", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="classLagrangianDS" kind="class">
  <compoundname>LagrangianDS</compoundname>
  <briefdescription>
    <para>Kinetic energy <formula id="12">$ E = \frac{1}{2} m v^2 $</formula> of the system.</para>
  </briefdescription>
</compounddef>`)

		info, err := doxygen.ExtractCompoundInfo(el)

		require.NoError(t, err)
		assert.Equal(t, "Kinetic energy :math:`E = \\frac{1}{2} m v^2` of the system.", info.Brief)
	})

	t.Run("indents embedded newlines by four spaces", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="structFrictionContactProblem" kind="struct">
  <compoundname>FrictionContactProblem</compoundname>
  <briefdescription>
    <para>The structure that defines a friction-contact problem.
Details are in the numerics documentation.</para>
  </briefdescription>
</compounddef>`)

		info, err := doxygen.ExtractCompoundInfo(el)

		require.NoError(t, err)
		assert.Equal(t, "The structure that defines a friction-contact problem.\n    Details are in the numerics documentation.", info.Brief)
	})

	t.Run("brief is empty without a para child", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="NewtonEulerR_8h" kind="file">
  <compoundname>NewtonEulerR.h</compoundname>
  <briefdescription>
  </briefdescription>
</compounddef>`)

		info, err := doxygen.ExtractCompoundInfo(el)

		require.NoError(t, err)
		assert.Equal(t, "NewtonEulerR.h", info.Name)
		assert.Equal(t, "file", info.Kind)
		assert.Empty(t, info.Brief)
	})

	t.Run("missing kind attribute is invalid", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="classKneeJointR">
  <compoundname>KneeJointR</compoundname>
  <briefdescription/>
</compounddef>`)

		_, err := doxygen.ExtractCompoundInfo(el)

		require.Error(t, err)
		assert.Equal(t, doxyrst.EINVALID, doxyrst.ErrorCode(err))
	})

	t.Run("duplicated compoundname is invalid", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="classKneeJointR" kind="class">
  <compoundname>KneeJointR</compoundname>
  <compoundname>KneeJointR2</compoundname>
  <briefdescription/>
</compounddef>`)

		_, err := doxygen.ExtractCompoundInfo(el)

		require.Error(t, err)
		assert.Equal(t, doxyrst.EINVALID, doxyrst.ErrorCode(err))
	})

	t.Run("missing briefdescription is invalid", func(t *testing.T) {
		t.Parallel()

		el := parseCompound(t, `
<compounddef id="classKneeJointR" kind="class">
  <compoundname>KneeJointR</compoundname>
</compounddef>`)

		_, err := doxygen.ExtractCompoundInfo(el)

		require.Error(t, err)
		assert.Equal(t, doxyrst.EINVALID, doxyrst.ErrorCode(err))
	})
}

func TestExtractCompoundInfos(t *testing.T) {
	t.Parallel()

	t.Run("reads every compounddef in a file", func(t *testing.T) {
		t.Parallel()

		content := `<?xml version='1.0' encoding='UTF-8' standalone='no'?>
<doxygen xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="1.9.1">
  <compounddef id="classDynamicalSystem" kind="class" language="C++">
    <compoundname>DynamicalSystem</compoundname>
    <briefdescription>
      <para>Abstract interface for dynamical systems. </para>
    </briefdescription>
  </compounddef>
  <compounddef id="structSolverOptions" kind="struct" language="C++">
    <compoundname>SolverOptions</compoundname>
    <briefdescription>
      <para>Structure used to send options to a numerics solver. </para>
    </briefdescription>
  </compounddef>
</doxygen>`
		path := filepath.Join(t.TempDir(), "classDynamicalSystem.xml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		infos, err := doxygen.NewExtractor().ExtractCompoundInfos(path)

		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "DynamicalSystem", infos[0].Name)
		assert.Equal(t, "class", infos[0].Kind)
		assert.Equal(t, "SolverOptions", infos[1].Name)
		assert.Equal(t, "struct", infos[1].Kind)
	})

	t.Run("malformed compound fails the whole file", func(t *testing.T) {
		t.Parallel()

		content := `<doxygen>
  <compounddef id="classBroken" kind="class">
    <compoundname>Broken</compoundname>
  </compounddef>
</doxygen>`
		path := filepath.Join(t.TempDir(), "classBroken.xml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := doxygen.NewExtractor().ExtractCompoundInfos(path)

		require.Error(t, err)
		assert.Equal(t, doxyrst.EINVALID, doxyrst.ErrorCode(err))
	})

	t.Run("missing file propagates the error", func(t *testing.T) {
		t.Parallel()

		_, err := doxygen.NewExtractor().ExtractCompoundInfos(filepath.Join(t.TempDir(), "nope.xml"))

		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

// parseCompound parses an XML fragment and returns its compounddef element.
func parseCompound(t *testing.T, fragment string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(fragment))
	el := doc.FindElement("//compounddef")
	require.NotNil(t, el)
	return el
}

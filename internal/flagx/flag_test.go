package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://host/api", "-x", "junk", "-t", "30"}
	got := FilterArgs(args, []string{"-a", "-t"})
	require.Equal(t, []string{"-a", "http://host/api", "-t", "30"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--addr=http://host/api", "--other=zzz"}
	got := FilterArgs(args, []string{"--addr"})
	require.Equal(t, []string{"--addr=http://host/api"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	// next arg looks like a flag, so it is not consumed as a value
	args := []string{"-a", "-t", "30"}
	got := FilterArgs(args, []string{"-a"})
	require.Equal(t, []string{"-a"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cli", "-a", "http://host/api", "-c", "conf.json"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"cli", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cli"}
	require.Equal(t, "", JsonConfigFlags())
}

package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// Describe returns a human-readable description of the host for
// diagnostics: OS/arch, plus distribution details on Linux when they
// can be detected. Detection failures degrade to the plain OS/arch
// form rather than returning an error.
func Describe(ctx context.Context) string {
	key := Resolve()
	base := fmt.Sprintf("%s/%s", key.OS, key.Arch)

	if runtime.GOOS != "linux" {
		return base
	}

	distro, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil || distro == "" {
		return base
	}
	if version == "" {
		return fmt.Sprintf("%s (%s, %s family)", base, distro, family)
	}
	return fmt.Sprintf("%s (%s %s, %s family)", base, distro, version, family)
}

package constants

// ErrorColor used in error texts
const ErrorColor = "\033[1;31m%s\033[0m"

const (
	// BootKernelDir is where staged kernels live as seen by rEFInd from the
	// root of the EFI system partition.
	BootKernelDir = "/efi/nixos"

	// LocalKey and LocalCert are the keys refind-install --localkeys
	// generates and signs with.
	LocalKey  = "/etc/refind.d/keys/refind_local.key"
	LocalCert = "/etc/refind.d/keys/refind_local.crt"

	// ProfilesDir holds the system profile and its generation links.
	ProfilesDir = "/nix/var/nix/profiles"

	// DefaultProfile is the name of the profile managed by nixos-rebuild.
	DefaultProfile = "system"

	// LinuxConfFile and RefindConfFile are the generated config file names.
	LinuxConfFile  = "refind_linux.conf"
	RefindConfFile = "refind.conf"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

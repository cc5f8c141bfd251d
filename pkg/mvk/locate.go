package mvk

import (
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	defs "platconf/definitions"
	"platconf/errors"
	log "platconf/logger"
	"platconf/pkg/buildenv"
	"platconf/pkg/utils"
)

// SDKPath returns the MoltenVK xcframework directory of the highest
// qualifying Vulkan SDK installation under root. An empty root means the
// conventional per-user install root (~/VulkanSDK).
//
// A subdirectory qualifies when its name parses to a version at least
// MinSDKVersion and the library artifact for osName exists under either the
// new or the legacy layout; the new layout wins when both are present. With
// no qualifying subdirectory the root itself is returned, and a nonexistent
// root yields "".
func SDKPath(root, osName string) (string, *errors.Diag) {
	if root == "" {
		root = utils.ExpandUser("~/" + defs.SDKRootDir)
	}
	if !utils.IsDir(root) {
		return "", nil
	}

	subdirs, err := utils.ListSubdirs(root)
	if err != nil {
		return "", errors.WarnErr("sdk_path",
			pkgerrors.Wrap(err, "enumerating SDK root"),
			"cannot list %s", root)
	}

	verMin := ParseVersion(defs.MinSDKVersion)
	best := ParseVersion("0.0.0.0")
	out := root

	for _, name := range subdirs {
		ver := ParseVersion(name)
		if !(ver.Compare(best) > 0 && ver.AtLeast(verMin)) {
			continue
		}

		for _, layout := range []string{defs.SDKNewLayout, defs.SDKLegacyLayout} {
			pkg := filepath.Join(root, name, layout)
			if utils.IsRegular(filepath.Join(pkg, osName, defs.SDKLibName)) {
				best = ver
				out = pkg
				break
			}
		}
	}

	return out, nil
}

// Detect returns the first MoltenVK location containing the library artifact
// for osName. The user override from env is tried first (as-is and under
// both SDK layouts), then the per-user SDK install, then the system install
// prefixes. Returns "" with a diagnostic when nothing qualifies.
func Detect(env *buildenv.Env, osName string) (string, *errors.Diag) {
	sdkPath, scanDiag := SDKPath("", osName)

	var candidates []string
	if env != nil && env.VulkanSDKPath != "" {
		override := utils.ExpandUser(env.VulkanSDKPath)
		candidates = append(candidates,
			filepath.Join(override, defs.SDKLegacyLayout),
			filepath.Join(override, defs.SDKNewLayout),
			override,
		)
	}
	candidates = append(candidates, sdkPath)
	candidates = append(candidates, defs.SystemSDKPrefixes...)

	for _, path := range candidates {
		if path == "" {
			continue
		}
		if utils.IsRegular(filepath.Join(path, osName, defs.SDKLibName)) {
			log.Infof("MoltenVK found at: %s", path)
			return path, nil
		}
	}

	diag := errors.WarnErr("detect_mvk", errors.SDKNotFound, "MoltenVK not found for %s", osName)
	if scanDiag != nil {
		diag.Err = scanDiag
	}
	return "", diag
}

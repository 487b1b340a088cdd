package domain

import "path/filepath"

// SDKEnvironment describes the platform SDKs visible to a cell.
// It is compared by value when deciding whether cached state may be reused.
type SDKEnvironment struct {
	AndroidSDK string
	AndroidNDK string
}

// ResolveSDKEnvironment derives the SDK environment from the sdk section, falling
// back to the conventional environment variables.
func ResolveSDKEnvironment(cfg Config) SDKEnvironment {
	sdk := cfg.SDK()
	env := cfg.Environment()

	return SDKEnvironment{
		AndroidSDK: firstNonEmpty(sdk["android_sdk"], env["ANDROID_SDK_ROOT"], env["ANDROID_HOME"]),
		AndroidNDK: firstNonEmpty(sdk["android_ndk"], env["ANDROID_NDK_ROOT"], env["ANDROID_NDK_HOME"]),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return filepath.Clean(v)
		}
	}
	return ""
}

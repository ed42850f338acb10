package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

// DefaultCollection lets an installation pin its data product so the
// UI can offer it as the default answer.
func DefaultCollection() string {
	return os.Getenv("DEA_DEFAULT_COLLECTION")
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}

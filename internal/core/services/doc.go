// Package services implements the driving port interfaces.
// ChannelService is what the host platform calls; ConfigProvider holds the
// connector settings it reads once at startup.
package services

package controllers

import (
	"staffhub/config"
	"staffhub/services"
	"staffhub/utils"
)

var (
	cfg          *config.Config
	mailer       *utils.SMTPMailer
	resetService *services.PasswordResetService
)

// Init wires the shared dependencies before routes are registered.
func Init(c *config.Config, m *utils.SMTPMailer, reset *services.PasswordResetService) {
	cfg = c
	mailer = m
	resetService = reset
}

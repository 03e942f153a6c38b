package api

import (
	"hushchat/internal/app/chat"
	"hushchat/internal/app/user"
)

// AuthResult is the payload of every authentication-style endpoint
// (register, login, self): the populated profile plus a fresh token.
type AuthResult struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

// RegisterInput is the request body for account creation.
type RegisterInput struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginInput is the request body for authentication.
type LoginInput struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// TextDraft is the request body for persisting a text message.
type TextDraft struct {
	Content     string           `json:"content"`
	To          string           `json:"to"`
	ContentType chat.ContentType `json:"contentType"`
}

// ImageDraft describes an image message to be persisted as a multipart
// request. EmbedData, when non-blank, is the plaintext the backend hides
// inside the image steganographically.
type ImageDraft struct {
	FilePath  string
	To        string
	EmbedData string
}

// decodeResponse is the envelope returned by the hidden-message decode endpoint.
type decodeResponse struct {
	Code int `json:"code"`
	Data struct {
		DecodedMessage string `json:"decoded_message"`
	} `json:"data"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

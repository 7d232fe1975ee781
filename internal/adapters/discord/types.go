package discord

// Wire types for the platform's interactions webhook and message REST
// API. Only the fields this service reads or writes are modeled.

// Interaction request types.
const (
	InteractionTypePing               = 1
	InteractionTypeApplicationCommand = 2
	InteractionTypeMessageComponent   = 3
)

// Interaction response types.
const (
	ResponseTypePong                  = 1
	ResponseTypeChannelMessage        = 4
	ResponseTypeDeferredMessageUpdate = 6
)

// MessageFlagEphemeral marks a response visible only to the acting user.
const MessageFlagEphemeral = 1 << 6

// Button styles.
const (
	ButtonStylePrimary = 1
	ButtonStyleSuccess = 3
	ButtonStyleDanger  = 4
)

// Component types.
const (
	ComponentTypeActionRow = 1
	ComponentTypeButton    = 2
)

type Interaction struct {
	ID            string           `json:"id"`
	ApplicationID string           `json:"application_id"`
	Type          int              `json:"type"`
	Data          *InteractionData `json:"data,omitempty"`
	ChannelID     string           `json:"channel_id,omitempty"`
	Message       *Message         `json:"message,omitempty"`
	Member        *Member          `json:"member,omitempty"`
	User          *User            `json:"user,omitempty"`
	Token         string           `json:"token,omitempty"`
}

// UserID returns the acting user's id. Guild interactions carry the
// user inside member; direct-message interactions carry it at the top.
func (i *Interaction) UserID() string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

type InteractionData struct {
	Name          string          `json:"name,omitempty"`
	CustomID      string          `json:"custom_id,omitempty"`
	ComponentType int             `json:"component_type,omitempty"`
	Options       []CommandOption `json:"options,omitempty"`
}

// Option returns the named string option's value, or "" when absent.
func (d *InteractionData) Option(name string) string {
	for _, opt := range d.Options {
		if opt.Name == name {
			return opt.Value
		}
	}
	return ""
}

type CommandOption struct {
	Name  string `json:"name"`
	Type  int    `json:"type"`
	Value string `json:"value"`
}

type Member struct {
	User *User `json:"user,omitempty"`
}

type User struct {
	ID string `json:"id"`
}

type Message struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id,omitempty"`
}

type InteractionResponse struct {
	Type int           `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

type ResponseData struct {
	Content    string      `json:"content,omitempty"`
	Flags      int         `json:"flags,omitempty"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []ActionRow `json:"components,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type ActionRow struct {
	Type       int      `json:"type"`
	Components []Button `json:"components"`
}

type Button struct {
	Type     int    `json:"type"`
	Style    int    `json:"style"`
	Label    string `json:"label"`
	CustomID string `json:"custom_id"`
}

type Command struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Options     []CommandOptionSpec `json:"options,omitempty"`
}

// CommandOptionTypeString is the platform's string option type.
const CommandOptionTypeString = 3

type CommandOptionSpec struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

package adapter

import (
	"strings"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// whatsappFoundKeys are tried in order to decide whether the probe located an
// account; payload shape varies across probe versions.
var whatsappFoundKeys = []string{
	"whatsapp_found", "exists", "isUser", "account_exists", "accountExists",
}

var whatsappPictureKeys = []string{
	"profilePicUrl", "profilePic", "picture", "avatar", "urlImage",
}

// adaptWhatsApp unifies the messaging-probe payload into a single card. The
// probe's JID ("user@server") is split into a structured id so downstream
// display code never has to parse it again.
func adaptWhatsApp(result model.RawResult) []*model.Platform {
	data, ok := normalize.Object(result.Data)
	if !ok {
		data = map[string]any{}
	}

	found := false
	for _, key := range whatsappFoundKeys {
		if raw, present := data[key]; present {
			found = normalize.Bool(raw)
			break
		}
	}

	unified := map[string]any{
		"whatsapp_found": found,
	}

	if pic := firstString(data, whatsappPictureKeys...); pic != "" {
		unified["profile_pic_url"] = pic
	}

	phone := firstString(data, "phone", "number")
	if phone == "" {
		phone = result.Query
	}
	if phone != "" {
		unified["phone"] = phone
	}

	if jid := firstString(data, "jid", "id"); jid != "" {
		if user, server, ok := strings.Cut(jid, "@"); ok {
			unified["id"] = map[string]any{
				"user":        user,
				"server":      server,
				"_serialized": jid,
			}
		} else {
			unified["id"] = jid
		}
	}

	status := model.StatusNotFound
	if found {
		status = model.StatusFound
	}

	return []*model.Platform{{
		Module:       "whatsapp",
		PlatformName: "WhatsApp",
		Source:       "whatsapp",
		Status:       status,
		Data:         unified,
	}}
}

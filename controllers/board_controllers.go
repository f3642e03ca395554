package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/table-booking/kds"
	"github.com/yeremiapane/table-booking/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

type BoardController struct {
	Hub *kds.BoardHub
}

func NewBoardController(hub *kds.BoardHub) *BoardController {
	return &BoardController{Hub: hub}
}

// BoardHandler -> endpoint WebSocket papan meja. Role di-set oleh BoardRoleMiddleware.
func (bc *BoardController) BoardHandler(c *gin.Context) {
	role := c.GetString("role")
	if role == "" {
		role = "viewer"
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	bc.Hub.RegisterClient(ws, role)
	utils.InfoLogger.Printf("Board client connected (role=%s)", role)

	// Baca pesan sampai client disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	bc.Hub.UnregisterClient(ws)
}

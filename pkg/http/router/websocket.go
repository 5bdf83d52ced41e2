package router

import (
	"net/http"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// routeStream upgrades the connection and serves one route query per
// websocket frame until the peer goes away. Each connection's read loop
// runs on the shared goroutine pool; query state is per-invocation, so
// streams never contend on the graph.
func (api *API) routeStream(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err))
		return
	}

	user := api.hub.Register(conn)
	api.log.Info("route stream connected", zap.String("conn", nameConn(conn)))

	api.pool.Schedule(func() {
		defer func() {
			api.hub.Remove(user)
			conn.Close()
			api.log.Info("route stream closed", zap.String("conn", nameConn(conn)))
		}()

		for {
			if err := user.StreamRoute(); err != nil {
				return
			}
		}
	})
}

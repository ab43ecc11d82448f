/*
Package taasctl manages the traffic mirroring ("tap-as-a-service") extension
of a virtual networking service: tap services, which are the ports mirrored
traffic gets delivered to, and tap flows, which mirror the traffic of a source
port into a tap service.

The package provides the few pieces that have to be gotten right regardless
of the CLI on top: resolving user-supplied names to resource IDs with
ambiguity detection (see [Resolver]), selecting and projecting display
columns from declarative attribute maps (see [AttributeSpec] and [Columns]),
and deleting a batch of resources without giving up on the first failure (see
[DeleteAll]).

All of these work against an injected [ResourceClient]. [NewRESTClient]
returns a client talking to the networking service's REST API; the taastest
package offers a fake service and an in-memory client for tests.
*/
package taasctl

/*
Package cli defines plugin extension points for the taasctl command. This
allows to build extended networking service CLI clients that leverage the
existing base implementation, for instance by adding further resource kinds or
clients reaching the networking service in other ways.

# Extension Points

The following plugin “group” extension points are available (and also invoked in
this general order):

  - [SetupCLI]: for adding (sub) commands and CLI args to the (in [cobra]
    parlance) “root” command.
  - [CommandExamples]: for adding (more) examples to particular commands, such
    as the “tap-service” and “tap-flow” commands. These plugin functions are
    invoked after all [SetupCLI] plugins have been called, so that all commands
    have been registered by the time the examples should be extended with even
    more examples.
  - [BeforeCommand]: for checking and doing things just before the command runs.
  - [NewClient]: for creating a suitable networking service client, depending
    on CLI args.

The plugin mechanism used in taasctl is compile-time only and allows so-called
plugins to register functions (and interface implementations) in what is termed
“groups”. The registered functions/interfaces then can be iterated over.
Additionally, the plugin mechanism allows control over the ordering of plugins.
For more details about the plugin mechanism, please refer to [go-plugger].

[cobra]: https://github.com/spf13/cobra
[go-plugger]: https://github.com/thediveo/go-plugger
*/
package cli
